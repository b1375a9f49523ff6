// Package highlight projects findings back onto the source text. Offsets
// claimed by the classification service are untrusted; the resolver locates
// each finding's value in the text itself and produces a non-overlapping
// span set safe to splice markup into.
package highlight

import (
	"sort"
	"strings"

	"github.com/hannes/philter/phi"
)

// Span is a finding re-anchored to verified offsets in the source text.
// Start and End are byte offsets with End exclusive.
type Span struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Value     string `json:"value"`
	Category  string `json:"category,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// Resolve locates each finding's value in text and returns a pairwise
// non-overlapping span set sorted ascending by Start.
//
// Findings are processed in list order: the first finding to claim a text
// range wins it, and each finding is anchored to its first occurrence whose
// range conflicts with no already-accepted span. A finding whose value is
// empty, absent from the text, or only present at conflicting positions
// contributes no span.
func Resolve(text string, findings []phi.Finding) []Span {
	var accepted []Span

	for _, f := range findings {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			continue
		}

		searchStart := 0
		for {
			pos := strings.Index(text[searchStart:], value)
			if pos < 0 {
				break
			}
			start := searchStart + pos
			end := start + len(value)

			if !overlapsAny(accepted, start, end) {
				accepted = append(accepted, Span{
					Start:     start,
					End:       end,
					Value:     value,
					Category:  categoryOf(f),
					Rationale: f.Rationale,
				})
				break // first non-conflicting occurrence only
			}
			searchStart = start + 1
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}

func overlapsAny(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}

// categoryOf prefers the classified category and falls back to the raw
// detection type when classification degraded.
func categoryOf(f phi.Finding) string {
	if f.Category != "" {
		return f.Category
	}
	return f.Type
}

// Summary counts resolved spans per category, mirroring the statistics panel
// of the presentation shell.
func Summary(spans []Span) map[string]int {
	counts := make(map[string]int, len(spans))
	for _, s := range spans {
		category := s.Category
		if category == "" {
			category = "Unknown"
		}
		counts[category]++
	}
	return counts
}
