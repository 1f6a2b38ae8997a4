package ai

import (
	"fmt"
	"strings"
)

// FieldSpec describes a single field of a structured model response.
type FieldSpec struct {
	Name        string
	Description string
	Required    bool
}

// OutputSchema is a declarative description of an expected structured model
// response. Defined once at process start and shared read-only across
// requests. Adding a new schema requires no changes to the prompt builder or
// the parsers.
type OutputSchema struct {
	Name   string
	Fields []FieldSpec
}

// FormatInstructions renders the schema into the prompt text instructing the
// model how to respond. Deterministic: same schema, same string.
func (s OutputSchema) FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a single JSON object containing exactly these fields:\n")
	for _, f := range s.Fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", f.Name, req, f.Description)
	}
	b.WriteString("Do not include any text outside the JSON object.")
	return b.String()
}

// WeeklySummarySchema is the structured output for the dashboard weekly
// summary. All fields are short strings and all are required.
var WeeklySummarySchema = OutputSchema{
	Name: "weekly_summary",
	Fields: []FieldSpec{
		{Name: "focus", Description: "A concise, actionable focus for the week. Should be 1-2 sentences.", Required: true},
		{Name: "opportunity", Description: "A key product or category opportunity to capitalize on. 1-2 sentences.", Required: true},
		{Name: "caution", Description: "A key product or category to be cautious about. 1-2 sentences.", Required: true},
		{Name: "action", Description: "A single, clear, actionable next step for the seller. 1 sentence.", Required: true},
	},
}
