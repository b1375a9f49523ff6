package phi

import (
	"context"
	"log"
	"strings"

	"github.com/hannes/philter/providers"
)

// ClassifyStage runs the second service call: assign each detected finding a
// category from the reference taxonomy plus a one-line risk rationale.
type ClassifyStage struct {
	completer providers.Completer
	taxonomy  []string
	opts      Options
}

func NewClassifyStage(completer providers.Completer, taxonomy []string) *ClassifyStage {
	return &ClassifyStage{completer: completer, taxonomy: normalizeTaxonomy(taxonomy)}
}

// Run classifies doc.RawFindings and writes the refined list to
// doc.ClassifiedFindings. A transport failure propagates to the caller.
// A response that does not parse degrades to a copy of the raw findings,
// uncategorized: evidence of PHI exists even though categorization could not
// be confirmed, which is why this fallback differs from the detect stage's
// empty list. Findings the service categorized as "none" are dropped.
func (s *ClassifyStage) Run(ctx context.Context, doc *Document) error {
	prompt := buildClassifyPrompt(doc.RawFindings, s.taxonomy)

	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	if s.opts.LogVerbose {
		log.Printf("[Classify] run %s: prompt %d bytes, response %d bytes", doc.ID, len(prompt), len(content))
	}

	findings, err := extractFindings(content)
	if err != nil {
		log.Printf("[Classify] ⚠️  run %s: unparseable response, preserving %d unclassified findings: %v",
			doc.ID, len(doc.RawFindings), err)
		doc.setClassifiedFindings(copyFindings(doc.RawFindings))
		return nil
	}

	kept := findings[:0]
	for _, f := range findings {
		if strings.EqualFold(f.Category, "none") {
			continue
		}
		kept = append(kept, f)
	}

	log.Printf("[Classify] run %s: %d findings classified", doc.ID, len(kept))
	if s.opts.LogFindings {
		for _, f := range kept {
			log.Printf("[Classify] run %s: %q -> %s", doc.ID, f.Value, f.Category)
		}
	}
	doc.setClassifiedFindings(kept)
	return nil
}

func copyFindings(src []Finding) []Finding {
	out := make([]Finding, len(src))
	copy(out, src)
	return out
}
