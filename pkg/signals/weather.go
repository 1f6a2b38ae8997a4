package signals

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sellerpulse/pkg/global"
)

type weatherClient struct {
	baseURL    string
	httpClient *http.Client
}

func newWeatherClient() *weatherClient {
	return &weatherClient{
		baseURL: global.GetEnvOrDefault("WEATHER_BASE_URL", "https://wttr.in"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// current fetches a one-line condition + temperature string, e.g. "Haze +34°C".
// wttr.in resolves Indian pincodes directly as location queries.
func (w *weatherClient) current(ctx context.Context, pincode string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?format=%s", w.baseURL, url.PathEscape(pincode), url.QueryEscape("%C %t"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("weather request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return "", fmt.Errorf("weather read: %w", err)
	}

	report := strings.TrimSpace(string(body))
	if report == "" {
		return "", fmt.Errorf("weather fetch: empty report for pincode %s", pincode)
	}
	return report, nil
}
