package extract

import (
	"errors"
	"testing"
)

func TestPDFExtractor_MalformedPayload(t *testing.T) {
	for name, input := range map[string][]byte{
		"empty":       {},
		"random text": []byte("this is not a pdf document"),
		"truncated":   []byte("%PDF-1.4"),
	} {
		_, err := NewPDFExtractor().Extract(input)
		if !errors.Is(err, ErrDecode) {
			t.Errorf("%s: expected ErrDecode, got %v", name, err)
		}
	}
}
