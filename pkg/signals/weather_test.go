package signals

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherCurrentReturnsTrimmedReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/110001", r.URL.Path)
		w.Write([]byte("Haze +34°C\n"))
	}))
	defer srv.Close()

	client := &weatherClient{baseURL: srv.URL, httpClient: srv.Client()}

	report, err := client.current(context.Background(), "110001")
	require.NoError(t, err)
	assert.Equal(t, "Haze +34°C", report)
}

func TestWeatherCurrentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := &weatherClient{baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.current(context.Background(), "110001")
	assert.Error(t, err)
}

func TestWeatherCurrentEmptyReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n"))
	}))
	defer srv.Close()

	client := &weatherClient{baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.current(context.Background(), "110001")
	assert.Error(t, err)
}
