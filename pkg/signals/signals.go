// Package signals fetches the auxiliary context signals (local weather,
// upcoming festivals) that enrich AI prompts. Every lookup is best-effort:
// callers substitute a neutral placeholder when a signal is unavailable.
package signals

import (
	"context"
	"time"
)

// Provider looks up auxiliary signals for a seller's location and date.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Weather returns a one-line weather description for an Indian pincode.
	Weather(ctx context.Context, pincode string) (string, error)

	// Festivals returns the names of festivals falling within the upcoming
	// window relative to the given date.
	Festivals(ctx context.Context, at time.Time) ([]string, error)
}

type provider struct {
	weather *weatherClient
}

// NewProvider returns the default Provider backed by the wttr.in weather
// service and the built-in festival calendar.
func NewProvider() Provider {
	return &provider{weather: newWeatherClient()}
}

func (p *provider) Weather(ctx context.Context, pincode string) (string, error) {
	return p.weather.current(ctx, pincode)
}

func (p *provider) Festivals(_ context.Context, at time.Time) ([]string, error) {
	return upcomingFestivals(at), nil
}
