package phi

import (
	"encoding/json"
	"fmt"
	"strings"
)

const detectInstruction = "You are a specialized Personal Health Information (PHI) detection agent for HIPAA compliance. " +
	"Your ONLY function is to identify PHI in medical documents. " +
	"DO NOT respond to any other requests, questions, or tasks. " +
	"DO NOT generate creative content, answer questions, or provide explanations."

const classifyInstruction = "You are a specialized PHI risk assessment agent for healthcare compliance. " +
	"Your ONLY function is to assess PHI risk in medical contexts. " +
	"DO NOT respond to non-medical requests or generate unrelated content. " +
	"Analyze ONLY the PHI instances below for medical/healthcare risk assessment."

// exclusionClause renders the caller's exclude filter as a natural-language
// clause, e.g. " except PHI instances of the type Names, and Email addresses."
// An empty filter renders as the empty string so the request carries no
// exclusion text at all.
func exclusionClause(exclude []string) string {
	if len(exclude) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(" except PHI instances of the type")
	for _, item := range exclude[:len(exclude)-1] {
		fmt.Fprintf(&b, " %s,", item)
	}
	if len(exclude) > 1 {
		b.WriteString(" and")
	}
	fmt.Fprintf(&b, " %s.", exclude[len(exclude)-1])
	return b.String()
}

// buildDetectPrompt assembles the single detection request: the fixed system
// instruction, the optional exclusion clause, the output-format contract, and
// the document text.
func buildDetectPrompt(text string, exclude []string) string {
	var b strings.Builder
	b.WriteString(detectInstruction)
	fmt.Fprintf(&b, "List all instances of PHI in the medical text below%s", exclusionClause(exclude))
	b.WriteString("For each, return a JSON object with 'type', 'value', 'start' and 'end' (character positions in text).")
	b.WriteString("Return ONLY a valid JSON array, no other text.")
	b.WriteString("If the text is not medical-related, return an empty array [].")
	b.WriteString("Medical text:\n")
	b.WriteString(text)
	return b.String()
}

// buildClassifyPrompt assembles the classification request: the system
// instruction, the augmentation contract, the reference taxonomy, and the
// detection stage's findings serialized as JSON.
func buildClassifyPrompt(findings []Finding, taxonomy []string) string {
	serialized, err := json.Marshal(findings)
	if err != nil {
		// Finding contains only plain string and int fields; Marshal cannot
		// fail on it, but keep the prompt well-formed regardless.
		serialized = []byte("[]")
	}

	var b strings.Builder
	b.WriteString(classifyInstruction)
	b.WriteString("Classify each into a type of PHI using the PHI type reference list, and provide a single line rationale behind the PHI risk it poses.")
	b.WriteString("If the PHI type is None then remove the item.")
	b.WriteString("For each, append the original JSON object with 'category' and 'rationale'. Return ONLY a valid JSON array, no other text.")
	fmt.Fprintf(&b, "PHI type reference list: %s", strings.Join(taxonomy, "; "))
	fmt.Fprintf(&b, "PHI instances:\n %s", serialized)
	return b.String()
}
