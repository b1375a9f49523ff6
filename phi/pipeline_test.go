package phi

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hannes/philter/extract"
)

const patientCSV = "name,ssn\nJohn Doe,123-45-6789\n"

func TestPipeline_EndToEnd(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`[{"type":"Names","value":"John Doe","start":14,"end":22}]`,
		`[{"type":"Names","value":"John Doe","start":14,"end":22,"category":"Names","rationale":"Identifies the patient."}]`,
	}}

	doc, err := NewPipeline(completer, nil).Run(context.Background(), []byte(patientCSV), "csv", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(doc.Text, "name: John Doe") {
		t.Errorf("Unexpected extracted text: %q", doc.Text)
	}
	if len(completer.prompts) != 2 {
		t.Fatalf("Expected exactly two service calls, got %d", len(completer.prompts))
	}
	if !strings.Contains(completer.prompts[0], doc.Text) {
		t.Error("Detection prompt should embed the extracted text")
	}
	if !strings.Contains(completer.prompts[1], `"value":"John Doe"`) {
		t.Error("Classification prompt should embed the detected findings")
	}

	if len(doc.RawFindings) != 1 {
		t.Errorf("Expected 1 raw finding, got %+v", doc.RawFindings)
	}
	got := doc.Findings()
	if len(got) != 1 || got[0].Category != "Names" {
		t.Errorf("Expected one classified finding, got %+v", got)
	}
}

func TestPipeline_UnsupportedFormat(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{"[]"}}

	_, err := NewPipeline(completer, nil).Run(context.Background(), []byte("x"), "docx", nil)
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if len(completer.prompts) != 0 {
		t.Error("Routing failures must abort before any service call")
	}
}

func TestPipeline_DecodeErrorAbortsRun(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{"[]"}}

	_, err := NewPipeline(completer, nil).Run(context.Background(), []byte("not,a\ncsv,row,extra\n"), "csv", nil)
	if !errors.Is(err, extract.ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
	if len(completer.prompts) != 0 {
		t.Error("Decode failures must abort before any service call")
	}
}

func TestPipeline_EmptyExtractionStillRuns(t *testing.T) {
	// A header-only table extracts to no text; that is a valid run, not an error.
	completer := &scriptedCompleter{responses: []string{"[]", "[]"}}

	doc, err := NewPipeline(completer, nil).Run(context.Background(), []byte("name,ssn\n"), "csv", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if doc.Text != "" {
		t.Errorf("Expected empty text, got %q", doc.Text)
	}
	if len(completer.prompts) != 2 {
		t.Errorf("Both stages must still run, got %d calls", len(completer.prompts))
	}
	if got := doc.Findings(); got == nil || len(got) != 0 {
		t.Errorf("Expected an empty finding list, got %+v", got)
	}
}
