// Package phi implements the document-to-findings pipeline: format routing
// and extraction, the two-stage PHI detection/classification protocol, and
// the state record carried through a run.
package phi

import (
	"context"
	"fmt"
	"log"

	"github.com/hannes/philter/extract"
	"github.com/hannes/philter/providers"
)

// Options controls what a pipeline run logs.
type Options struct {
	LogText     bool // log the full extracted text
	LogFindings bool // log finding values per stage
	LogVerbose  bool // log prompt and response sizes per service call
}

// Pipeline wires the router, the extractors, and the two service stages into
// a single synchronous run. Stages execute strictly in order and each fully
// completes before the next starts. A Pipeline is stateless across runs;
// concurrent documents get independent Document records.
type Pipeline struct {
	router   *extract.Router
	detect   *DetectStage
	classify *ClassifyStage
	opts     Options
}

// NewPipeline builds a pipeline over the given completion service. An empty
// taxonomy uses DefaultTaxonomy.
func NewPipeline(completer providers.Completer, taxonomy []string) *Pipeline {
	return NewPipelineWithOptions(completer, taxonomy, Options{})
}

// NewPipelineWithOptions builds a pipeline with custom logging options.
func NewPipelineWithOptions(completer providers.Completer, taxonomy []string, opts Options) *Pipeline {
	return &Pipeline{
		router:   extract.NewRouter(),
		detect:   &DetectStage{completer: completer, opts: opts},
		classify: &ClassifyStage{completer: completer, taxonomy: normalizeTaxonomy(taxonomy), opts: opts},
		opts:     opts,
	}
}

func normalizeTaxonomy(taxonomy []string) []string {
	if len(taxonomy) == 0 {
		return DefaultTaxonomy
	}
	return taxonomy
}

// Run processes one complete document: route on the format tag, extract
// normalized text, detect candidate findings, classify them. The returned
// Document carries the text and the authoritative finding list; callers
// project findings onto the text with the highlight package.
//
// Format and decode errors abort the run before any service call. Transport
// failures from the service abort the run where they occur. Malformed
// service responses never abort: the stages degrade per their documented
// fallbacks.
func (p *Pipeline) Run(ctx context.Context, input []byte, fileExt string, exclude []string) (*Document, error) {
	doc := NewDocument(input, fileExt, exclude)

	extractor, err := p.router.Route(doc.FileExt)
	if err != nil {
		return nil, err
	}

	text, err := extractor.Extract(doc.Input)
	if err != nil {
		return nil, fmt.Errorf("%s extraction failed: %w", extractor.GetName(), err)
	}
	doc.Text = text
	log.Printf("[Pipeline] run %s: extracted %d characters via %s", doc.ID, len(text), extractor.GetName())
	if p.opts.LogText {
		log.Printf("[Pipeline] run %s: text: %s", doc.ID, text)
	}

	if err := p.detect.Run(ctx, doc); err != nil {
		return nil, fmt.Errorf("detection stage failed: %w", err)
	}

	if err := p.classify.Run(ctx, doc); err != nil {
		return nil, fmt.Errorf("classification stage failed: %w", err)
	}

	return doc, nil
}
