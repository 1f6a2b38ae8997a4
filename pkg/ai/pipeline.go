package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sellerpulse/pkg/models"
	"sellerpulse/pkg/signals"
)

const generationTemperature = 0.7

// NoReturnsInsight is the canned answer for an empty returns list. Returned
// without touching the model: a zero-cost fast path, not an error.
const NoReturnsInsight = "There are no returned items to analyze."

// Pipeline runs the insight stages Assemble -> Build -> Generate -> Parse
// for each use case. It holds no per-request state; one instance serves all
// in-flight requests.
type Pipeline struct {
	gen     Generator
	signals signals.Provider
}

func NewPipeline(gen Generator, provider signals.Provider) *Pipeline {
	return &Pipeline{gen: gen, signals: provider}
}

// Summarize produces the structured weekly summary for the given inventory
// records. Empty records still go through the full pipeline; a summary of
// sparse data is a valid use case.
func (p *Pipeline) Summarize(ctx context.Context, records []models.BusinessRecord, pincode string) (*models.AISummary, error) {
	contextBlob := AssembleContext(ctx, records, pincode, p.signals)
	prompt := BuildPrompt(WeeklySummaryTemplate, contextBlob, WeeklySummarySchema.FormatInstructions())

	raw, err := p.gen.GenerateCompletion(ctx, prompt, generationTemperature)
	if err != nil {
		log.Printf("summary pipeline failed at generation: %v", err)
		return nil, err
	}

	fields, err := StructuredParser{Schema: WeeklySummarySchema}.Parse(raw)
	if err != nil {
		log.Printf("summary pipeline failed at parsing: %v", err)
		return nil, err
	}

	return &models.AISummary{
		Focus:       fields["focus"],
		Opportunity: fields["opportunity"],
		Caution:     fields["caution"],
		Action:      fields["action"],
	}, nil
}

// AnalyzeReturns produces one free-text piece of advice from a list of
// returned items.
func (p *Pipeline) AnalyzeReturns(ctx context.Context, items []models.ReturnItem) (string, error) {
	if len(items) == 0 {
		return NoReturnsInsight, nil
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- Product: '%s', Reason: '%s'\n", item.Description, item.ReturnReason)
	}
	prompt := BuildPrompt(ReturnsInsightTemplate, strings.TrimRight(b.String(), "\n"), "")

	raw, err := p.gen.GenerateCompletion(ctx, prompt, generationTemperature)
	if err != nil {
		log.Printf("returns pipeline failed at generation: %v", err)
		return "", err
	}

	insight, err := PlainTextParser{}.Parse(raw)
	if err != nil {
		log.Printf("returns pipeline failed at parsing: %v", err)
		return "", err
	}
	return insight, nil
}
