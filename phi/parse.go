package phi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractFindings pulls a finding list out of a free-form service response.
//
// If the trimmed body opens with '[' the whole body is parsed as JSON.
// Otherwise the substring between the first '[' and the last ']' is parsed,
// which handles responses wrapped in prose or code fences. Anything else is
// an error; callers decide the fallback (the two stages degrade differently).
func extractFindings(body string) ([]Finding, error) {
	trimmed := strings.TrimSpace(body)

	var candidate string
	if strings.HasPrefix(trimmed, "[") {
		candidate = trimmed
	} else {
		start := strings.Index(body, "[")
		end := strings.LastIndex(body, "]")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("no JSON array in response")
		}
		candidate = body[start : end+1]
	}

	var findings []Finding
	if err := json.Unmarshal([]byte(candidate), &findings); err != nil {
		return nil, fmt.Errorf("failed to parse findings array: %w", err)
	}
	if findings == nil {
		findings = []Finding{}
	}
	return findings, nil
}
