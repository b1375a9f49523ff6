package extract

import (
	"errors"
	"testing"
)

func TestRouter_SupportedFormats(t *testing.T) {
	router := NewRouter()

	cases := []struct {
		ext  string
		name string
	}{
		{"png", "ocr"},
		{"pdf", "pdf"},
		{"csv", "csv"},
	}

	for _, tc := range cases {
		extractor, err := router.Route(tc.ext)
		if err != nil {
			t.Errorf("Route(%q): expected no error, got %v", tc.ext, err)
			continue
		}
		if extractor.GetName() != tc.name {
			t.Errorf("Route(%q): expected extractor %q, got %q", tc.ext, tc.name, extractor.GetName())
		}
	}
}

func TestRouter_UnsupportedFormats(t *testing.T) {
	router := NewRouter()

	for _, ext := range []string{"txt", "docx", "PNG", "", "jpeg"} {
		extractor, err := router.Route(ext)
		if extractor != nil {
			t.Errorf("Route(%q): expected nil extractor, got %v", ext, extractor.GetName())
		}
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Route(%q): expected ErrUnsupportedFormat, got %v", ext, err)
		}
	}
}
