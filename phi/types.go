package phi

import (
	"github.com/google/uuid"
)

// Finding is one candidate PHI instance located in the document text.
//
// Type is whatever category label the detection service emitted and is not
// constrained. Category is only present after classification and is drawn
// from the reference taxonomy. Start and End are the character offsets
// claimed by the service; they are not trusted and the highlight package
// re-derives real offsets from Value.
type Finding struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Category  string `json:"category,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// Document is the pipeline's working record. It is created once per run,
// each stage writes its own field exactly once, and it is discarded when the
// run completes. RawFindings holds the detection stage output and
// ClassifiedFindings the classification stage output, so the prior stage's
// result stays inspectable after the run.
type Document struct {
	ID       uuid.UUID
	Input    []byte
	FileExt  string
	Text     string
	Excluded []string

	RawFindings        []Finding
	ClassifiedFindings []Finding

	detected   bool
	classified bool
}

// NewDocument builds a fresh run record for the given payload and lowercase
// format tag.
func NewDocument(input []byte, fileExt string, exclude []string) *Document {
	return &Document{
		ID:       uuid.New(),
		Input:    input,
		FileExt:  fileExt,
		Excluded: exclude,
	}
}

// Findings returns the authoritative finding list: the classification stage
// output once it has run, otherwise the detection stage output, otherwise nil.
func (d *Document) Findings() []Finding {
	if d.classified {
		return d.ClassifiedFindings
	}
	if d.detected {
		return d.RawFindings
	}
	return nil
}

func (d *Document) setRawFindings(f []Finding) {
	if f == nil {
		f = []Finding{}
	}
	d.RawFindings = f
	d.detected = true
}

func (d *Document) setClassifiedFindings(f []Finding) {
	if f == nil {
		f = []Finding{}
	}
	d.ClassifiedFindings = f
	d.classified = true
}
