package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/hannes/philter/config"
	"github.com/hannes/philter/highlight"
	"github.com/hannes/philter/phi"
	"github.com/hannes/philter/providers"
	"github.com/hannes/philter/server"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file from current directory")
	}

	filePath := flag.String("file", "", "Path to the document to analyze (png, pdf, or csv)")
	exclude := flag.String("exclude", "", "Comma-separated PHI categories to advise the service to skip")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of analyzing a single file")
	addr := flag.String("addr", "", "Listen address for -serve (overrides config)")
	taxonomyPath := flag.String("taxonomy", "", "Path to a YAML taxonomy override")
	asHTML := flag.Bool("html", false, "Print the annotated text as HTML instead of bracket markup")
	flag.Parse()

	cfg := config.DefaultConfig()
	loadConfigFromEnv(cfg)
	if *addr != "" {
		cfg.ServerAddr = *addr
	}
	if *taxonomyPath != "" {
		cfg.TaxonomyPath = *taxonomyPath
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Printf("Sentry initialization failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	taxonomy := phi.DefaultTaxonomy
	if cfg.TaxonomyPath != "" {
		var err error
		taxonomy, err = phi.LoadTaxonomy(cfg.TaxonomyPath)
		if err != nil {
			fatalf("Failed to load taxonomy: %v", err)
		}
		log.Printf("Loaded %d taxonomy categories from %s", len(taxonomy), cfg.TaxonomyPath)
	}

	completer, err := buildCompleter(cfg)
	if err != nil {
		fatalf("Failed to configure provider: %v", err)
	}
	log.Printf("Classification service: %s", completer.GetName())

	pipeline := phi.NewPipelineWithOptions(completer, taxonomy, phi.Options{
		LogText:     cfg.Logging.LogText,
		LogFindings: cfg.Logging.LogFindings,
		LogVerbose:  cfg.Logging.LogVerbose,
	})

	if *serve {
		srv := server.NewServer(pipeline)
		log.Printf("Starting PHI detection API on %s", cfg.ServerAddr)
		if err := srv.Run(cfg.ServerAddr); err != nil {
			fatalf("Server failed: %v", err)
		}
		return
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: philter -file <document.(png|pdf|csv)> [-exclude \"Names,Email addresses\"]")
		fmt.Fprintln(os.Stderr, "       philter -serve [-addr :8080]")
		os.Exit(2)
	}

	analyzeFile(pipeline, *filePath, splitExclude(*exclude), *asHTML)
}

func analyzeFile(pipeline *phi.Pipeline, path string, exclude []string, asHTML bool) {
	input, err := os.ReadFile(path) // #nosec G304 - path comes from the operator's command line
	if err != nil {
		fatalf("Failed to read %s: %v", path, err)
	}
	fileExt := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	doc, err := pipeline.Run(context.Background(), input, fileExt, exclude)
	if err != nil {
		fatalf("Analysis failed: %v", err)
	}

	spans := highlight.Resolve(doc.Text, doc.Findings())

	marker := highlight.BracketMarker
	if asHTML {
		marker = highlight.HTMLMarker
	}
	fmt.Println(highlight.Annotate(doc.Text, spans, marker))
	fmt.Println()

	out, err := json.MarshalIndent(map[string]any{
		"findings": doc.Findings(),
		"spans":    spans,
		"summary":  highlight.Summary(spans),
	}, "", "  ")
	if err != nil {
		fatalf("Failed to render result: %v", err)
	}
	fmt.Println(string(out))
}

func buildCompleter(cfg *config.Config) (providers.Completer, error) {
	var completer providers.Completer
	switch cfg.Provider.Name {
	case "openai":
		p := providers.NewOpenAIProvider(cfg.Provider.OpenAIBaseURL, cfg.Provider.OpenAIAPIKey, cfg.Provider.OpenAIModel)
		if err := p.ValidateConfig(); err != nil {
			return nil, err
		}
		completer = p
	case "gemini":
		p, err := providers.NewGeminiProvider(context.Background(), cfg.Provider.GeminiAPIKey, cfg.Provider.GeminiModel)
		if err != nil {
			return nil, err
		}
		completer = p
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}

	if cfg.Provider.CacheSize > 0 {
		cached, err := providers.NewCachedCompleter(completer, cfg.Provider.CacheSize)
		if err != nil {
			return nil, err
		}
		completer = cached
	}
	if cfg.Provider.RequestsPerMinute > 0 {
		completer = providers.NewRateLimitedCompleter(completer, cfg.Provider.RequestsPerMinute)
	}
	return completer, nil
}

// splitExclude turns the -exclude flag value into a list of category names.
func splitExclude(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadConfigFromEnv overrides configuration with environment variables
func loadConfigFromEnv(cfg *config.Config) {
	if v := os.Getenv("PHILTER_PROVIDER"); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Provider.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Provider.OpenAIAPIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Provider.OpenAIModel = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Provider.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Provider.GeminiModel = v
	}
	if v := os.Getenv("PHILTER_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Provider.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("PHILTER_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Provider.CacheSize = n
		}
	}
	if v := os.Getenv("PHILTER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("PHILTER_TAXONOMY"); v != "" {
		cfg.TaxonomyPath = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	if v := os.Getenv("PHILTER_LOG_TEXT"); v != "" {
		cfg.Logging.LogText = v == "true"
	}
	if v := os.Getenv("PHILTER_LOG_FINDINGS"); v != "" {
		cfg.Logging.LogFindings = v == "true"
	}
	if v := os.Getenv("PHILTER_LOG_VERBOSE"); v != "" {
		cfg.Logging.LogVerbose = v == "true"
	}
}

// fatalf reports the error to Sentry (when configured) before exiting.
func fatalf(format string, args ...any) {
	err := fmt.Errorf(format, args...)
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	log.Fatal(err)
}
