package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sellerpulse/pkg/ai"
)

func TestWeeklySummarySchemaFormatInstructions(t *testing.T) {
	instructions := ai.WeeklySummarySchema.FormatInstructions()

	for _, field := range []string{"focus", "opportunity", "caution", "action"} {
		assert.Contains(t, instructions, "- "+field+" (required)")
	}
	assert.Contains(t, instructions, "JSON object")
}

func TestFormatInstructionsIsDeterministic(t *testing.T) {
	assert.Equal(t,
		ai.WeeklySummarySchema.FormatInstructions(),
		ai.WeeklySummarySchema.FormatInstructions())
}

func TestFormatInstructionsPreservesFieldOrder(t *testing.T) {
	instructions := ai.WeeklySummarySchema.FormatInstructions()

	last := -1
	for _, field := range []string{"focus", "opportunity", "caution", "action"} {
		idx := strings.Index(instructions, "- "+field)
		assert.Greater(t, idx, last, "field %s out of order", field)
		last = idx
	}
}

func TestFormatInstructionsMarksOptionalFields(t *testing.T) {
	schema := ai.OutputSchema{
		Name: "test",
		Fields: []ai.FieldSpec{
			{Name: "headline", Description: "Short headline.", Required: true},
			{Name: "footnote", Description: "Optional footnote.", Required: false},
		},
	}

	instructions := schema.FormatInstructions()
	assert.Contains(t, instructions, "- headline (required)")
	assert.Contains(t, instructions, "- footnote (optional)")
}
