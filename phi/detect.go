package phi

import (
	"context"
	"log"

	"github.com/hannes/philter/providers"
)

// DetectStage runs the first service call: list every candidate PHI span in
// the document text.
type DetectStage struct {
	completer providers.Completer
	opts      Options
}

func NewDetectStage(completer providers.Completer) *DetectStage {
	return &DetectStage{completer: completer}
}

// Run asks the service for candidate findings and writes them to
// doc.RawFindings. A transport failure propagates to the caller untouched.
// A response that does not parse as a findings array degrades to an empty
// list: no evidence of PHI was ever established, which is distinct from the
// classification stage's fallback. The two cases "service said no PHI" and
// "service returned garbage" produce the same empty result but different log
// lines, so they stay distinguishable in operation.
func (s *DetectStage) Run(ctx context.Context, doc *Document) error {
	prompt := buildDetectPrompt(doc.Text, doc.Excluded)

	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	if s.opts.LogVerbose {
		log.Printf("[Detect] run %s: prompt %d bytes, response %d bytes", doc.ID, len(prompt), len(content))
	}

	findings, err := extractFindings(content)
	if err != nil {
		log.Printf("[Detect] ⚠️  run %s: unparseable response, degrading to no findings: %v", doc.ID, err)
		doc.setRawFindings([]Finding{})
		return nil
	}

	if len(findings) == 0 {
		log.Printf("[Detect] run %s: service reported no PHI", doc.ID)
	} else {
		log.Printf("[Detect] run %s: %d candidate findings", doc.ID, len(findings))
		if s.opts.LogFindings {
			for _, f := range findings {
				log.Printf("[Detect] run %s: candidate %q (%s)", doc.ID, f.Value, f.Type)
			}
		}
	}
	doc.setRawFindings(findings)
	return nil
}
