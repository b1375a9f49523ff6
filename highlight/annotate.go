package highlight

import (
	"fmt"
	"html"
	"sort"
)

// Marker renders the annotated form of one span's value.
type Marker func(span Span) string

// Annotate splices markup into text at each span's boundaries. Spans are
// applied in descending Start order: every insertion changes the text's
// length, and applying higher offsets first keeps every lower offset valid
// because edits above an offset never disturb the text below it.
//
// The spans must be non-overlapping, i.e. come from Resolve.
func Annotate(text string, spans []Span, marker Marker) string {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	annotated := text
	for _, s := range ordered {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			continue
		}
		annotated = annotated[:s.Start] + marker(s) + annotated[s.End:]
	}
	return annotated
}

// HTMLMarker renders a span as the highlight markup the web shell displays,
// with category and rationale in the tooltip.
func HTMLMarker(s Span) string {
	tooltip := "PHI Type: " + html.EscapeString(s.Category)
	if s.Rationale != "" {
		// &#10; renders a line break inside the title attribute.
		tooltip += "&#10;Risk: " + html.EscapeString(s.Rationale)
	}
	return fmt.Sprintf(`<span class="phi-highlight" title="%s">%s</span>`,
		tooltip, html.EscapeString(s.Value))
}

// BracketMarker renders a span as [[Category: value]] for terminal output.
func BracketMarker(s Span) string {
	return fmt.Sprintf("[[%s: %s]]", s.Category, s.Value)
}
