package config

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	LogText     bool // Log extracted document text
	LogFindings bool // Log detected and classified findings
	LogVerbose  bool // Log prompt/response sizes per stage
}

// ProviderConfig holds the classification service configuration
type ProviderConfig struct {
	Name          string // "openai" or "gemini"
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	RequestsPerMinute int // 0 disables rate limiting
	CacheSize         int // LRU entries for response caching; 0 disables
}

// Config holds all configuration for the PHI detection service
type Config struct {
	Provider     ProviderConfig
	Logging      LoggingConfig
	ServerAddr   string
	TaxonomyPath string // optional YAML override of the PHI reference list
	SentryDSN    string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:              "openai",
			OpenAIBaseURL:     "https://api.openai.com/v1",
			OpenAIModel:       "gpt-4o",
			GeminiModel:       "gemini-2.0-flash",
			RequestsPerMinute: 0,
			CacheSize:         128,
		},
		Logging: LoggingConfig{
			LogText:     false,
			LogFindings: true,
			LogVerbose:  false,
		},
		ServerAddr: ":8080",
	}
}
