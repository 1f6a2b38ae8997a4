package ai

import "strings"

// Instruction templates for the two insight use cases. {context} and
// {format_instructions} are literal placeholders replaced by BuildPrompt.
const (
	WeeklySummaryTemplate = `You are an expert e-commerce analyst for sellers in India. Your task is to provide a brief, actionable weekly summary based on the provided context.

Analyze the following context:
{context}

Your instructions:
- Keep the tone encouraging and direct.
- Base your analysis strictly on the provided product inventory, local weather, and upcoming festivals.
- Do not make up information. If the context is sparse, provide general advice.

{format_instructions}`

	ReturnsInsightTemplate = `You are an expert e-commerce analyst. I will provide you with a list of recently returned products and the reasons for their return.
Your task is to identify any patterns and provide a single, concise, and actionable piece of advice for the seller to reduce their return rate.

Here is the list of returns:
{context}

Analyze these returns and provide one key insight. For example, if you see multiple returns for 'Wrong Size' for the same product, suggest adding a size chart.
If you see 'Damaged in Transit', suggest improving packaging. The advice should be direct and easy to implement.

Respond with only the actionable advice.`
)

// BuildPrompt splices the context blob and format instructions into an
// instruction template. Each placeholder is replaced exactly once, format
// instructions first, so placeholder-looking text inside the context is
// inserted verbatim and never re-interpreted. Pure string composition:
// identical inputs yield byte-identical prompts.
func BuildPrompt(template, contextBlob, formatInstructions string) string {
	prompt := strings.Replace(template, "{format_instructions}", formatInstructions, 1)
	return strings.Replace(prompt, "{context}", contextBlob, 1)
}
