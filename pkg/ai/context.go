package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"sellerpulse/pkg/models"
	"sellerpulse/pkg/signals"
)

const (
	// SparseDataMarker tells the model there is nothing to analyze, so it
	// falls back to general advice instead of fabricating specifics.
	SparseDataMarker = "Inventory data is sparse: no product records are available."

	// NoSignalPlaceholder stands in for any auxiliary signal that could not
	// be fetched. Signal failures never block the pipeline.
	NoSignalPlaceholder = "no local signal available"
)

// AssembleContext builds the textual context blob for one request: the
// business summary first, then the auxiliary signals, so the context section
// of the prompt is deterministic for a given set of inputs.
func AssembleContext(ctx context.Context, records []models.BusinessRecord, pincode string, provider signals.Provider) string {
	var b strings.Builder

	b.WriteString("Product inventory:\n")
	if len(records) == 0 {
		b.WriteString(SparseDataMarker)
		b.WriteString("\n")
	}
	for _, record := range records {
		description, ok := record.Description()
		if !ok {
			description = "unknown"
		}
		category, ok := record.Category()
		if !ok {
			category = "uncategorized"
		}
		if stock, ok := record.Stock(); ok {
			fmt.Fprintf(&b, "- Product: '%s' (category: %s, stock: %d)\n", description, category, stock)
		} else {
			fmt.Fprintf(&b, "- Product: '%s' (category: %s)\n", description, category)
		}
	}

	fmt.Fprintf(&b, "\nLocal weather (pincode %s): %s\n", pincode, weatherSignal(ctx, pincode, provider))
	fmt.Fprintf(&b, "Upcoming festivals: %s", festivalSignal(ctx, provider))

	return b.String()
}

func weatherSignal(ctx context.Context, pincode string, provider signals.Provider) string {
	if provider == nil || pincode == "" {
		return NoSignalPlaceholder
	}
	report, err := provider.Weather(ctx, pincode)
	if err != nil || report == "" {
		if err != nil {
			log.Printf("weather signal unavailable for pincode %s: %v", pincode, err)
		}
		return NoSignalPlaceholder
	}
	return report
}

func festivalSignal(ctx context.Context, provider signals.Provider) string {
	if provider == nil {
		return NoSignalPlaceholder
	}
	names, err := provider.Festivals(ctx, time.Now())
	if err != nil || len(names) == 0 {
		if err != nil {
			log.Printf("festival signal unavailable: %v", err)
		}
		return NoSignalPlaceholder
	}
	return strings.Join(names, ", ")
}
