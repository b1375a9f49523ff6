// Package extract turns raw document payloads into a single normalized text
// string. One extractor exists per supported format tag and the router
// selects exactly one of them per run.
package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for any format tag outside {png, pdf, csv}.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecode is returned when a payload cannot be parsed as its claimed format.
	ErrDecode = errors.New("failed to decode payload")
)

// Extractor turns a raw byte payload into normalized text. Producing no text
// is a valid result, not an error.
type Extractor interface {
	GetName() string
	Extract(input []byte) (string, error)
}

// Router maps a lowercase format tag to its extractor.
type Router struct {
	ocr Extractor
	pdf Extractor
	csv Extractor
}

// NewRouter builds a router over the three standard extractors.
func NewRouter() *Router {
	return &Router{
		ocr: NewOCRExtractor(),
		pdf: NewPDFExtractor(),
		csv: NewCSVExtractor(),
	}
}

// Route returns the extractor for the given format tag, or an error wrapping
// ErrUnsupportedFormat for anything outside the supported set.
func (r *Router) Route(fileExt string) (Extractor, error) {
	switch fileExt {
	case "png":
		return r.ocr, nil
	case "pdf":
		return r.pdf, nil
	case "csv":
		return r.csv, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileExt)
	}
}
