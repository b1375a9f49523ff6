package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor serializes a delimited table into a fixed textual layout:
// for each record one "Index: N" line, one "column: value" line per column
// in declared order, then a blank separator line. The layout keeps every
// cell value a contiguous substring so the span resolver can locate it.
type CSVExtractor struct{}

func NewCSVExtractor() *CSVExtractor {
	return &CSVExtractor{}
}

func (e *CSVExtractor) GetName() string {
	return "csv"
}

func (e *CSVExtractor) Extract(input []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(input))

	header, err := reader.Read()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var sb strings.Builder
	for index := 0; ; index++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDecode, err)
		}

		fmt.Fprintf(&sb, "Index: %d\n", index)
		for col, value := range record {
			fmt.Fprintf(&sb, "%s: %s\n", header[col], value)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
