package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sellerpulse/pkg/ai"
)

func TestBuildPromptIsIdempotent(t *testing.T) {
	contextBlob := "Product inventory:\n- Product: 'Red Shirt' (category: Apparel, stock: 3)"
	instructions := ai.WeeklySummarySchema.FormatInstructions()

	first := ai.BuildPrompt(ai.WeeklySummaryTemplate, contextBlob, instructions)
	second := ai.BuildPrompt(ai.WeeklySummaryTemplate, contextBlob, instructions)

	assert.Equal(t, first, second, "identical inputs must yield byte-identical prompts")
}

func TestBuildPromptEmbedsContextAndInstructions(t *testing.T) {
	contextBlob := "Product inventory:\n- Product: 'Red Shirt'"
	instructions := ai.WeeklySummarySchema.FormatInstructions()

	prompt := ai.BuildPrompt(ai.WeeklySummaryTemplate, contextBlob, instructions)

	assert.Contains(t, prompt, "Red Shirt")
	assert.Contains(t, prompt, instructions)
	assert.NotContains(t, prompt, "{context}")
}

func TestBuildPromptDoesNotReinterpretContext(t *testing.T) {
	// Context text that happens to contain placeholder syntax must be
	// inserted verbatim, not expanded.
	contextBlob := "record mentions {format_instructions} and {context} literally"
	instructions := "INSTRUCTIONS"

	prompt := ai.BuildPrompt(ai.WeeklySummaryTemplate, contextBlob, instructions)

	assert.Contains(t, prompt, "record mentions {format_instructions} and {context} literally")
	assert.Equal(t, 1, strings.Count(prompt, "INSTRUCTIONS"))
}

func TestBuildPromptWithoutFormatInstructions(t *testing.T) {
	prompt := ai.BuildPrompt(ai.ReturnsInsightTemplate, "- Product: 'Shoe', Reason: 'Wrong Size'", "")

	assert.Contains(t, prompt, "Wrong Size")
	assert.NotContains(t, prompt, "{context}")
}
