package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls plain text out of a paginated document.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) GetName() string {
	return "pdf"
}

// Extract concatenates per-page text in page order with no separator. A page
// with no extractable text contributes an empty string; only a payload that
// does not decode as a PDF is an error.
func (e *PDFExtractor) Extract(input []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(input), int64(len(input)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages that cannot yield text contribute nothing, same as
			// pages that are genuinely empty.
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
