package extract

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/png"

	"github.com/otiai10/gosseract/v2"
)

// OCRExtractor runs optical character recognition over a raster image.
type OCRExtractor struct{}

func NewOCRExtractor() *OCRExtractor {
	return &OCRExtractor{}
}

func (e *OCRExtractor) GetName() string {
	return "ocr"
}

// Extract decodes the payload as an image and runs Tesseract over it. The
// recognized text is trimmed and embedded line breaks collapse to single
// spaces so downstream span matching operates on one logical line.
// Recognition yielding no text returns an empty string, not an error.
func (e *OCRExtractor) Extract(input []byte) (string, error) {
	if _, _, err := image.Decode(bytes.NewReader(input)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("text recognition failed: %w", err)
	}

	return normalizeOCRText(text), nil
}

func normalizeOCRText(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
}
