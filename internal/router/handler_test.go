package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerpulse/pkg/ai"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateCompletion(_ context.Context, _ string, _ float64) (string, error) {
	s.calls++
	return s.response, s.err
}

type stubSignals struct{}

func (stubSignals) Weather(_ context.Context, _ string) (string, error) {
	return "Sunny +28°C", nil
}

func (stubSignals) Festivals(_ context.Context, _ time.Time) ([]string, error) {
	return []string{"Diwali"}, nil
}

func setupRouter(t *testing.T, gen ai.Generator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	original := Pipeline
	Pipeline = ai.NewPipeline(gen, stubSignals{})
	t.Cleanup(func() { Pipeline = original })

	Router = gin.New()
	InitializeRoutes()
}

func postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)
	return w
}

func TestGetDashboardSummary(t *testing.T) {
	gen := &stubGenerator{response: `{"focus": "A", "opportunity": "B", "caution": "C", "action": "D"}`}
	setupRouter(t, gen)

	w := postJSON("/api/dashboard/summary",
		`{"products": [{"description": "Red Shirt", "stock": 3, "category": "Apparel"}], "pincode": "110001"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, w.Body.String(), `"focus":"A"`)
	assert.Contains(t, w.Body.String(), `"action":"D"`)
}

func TestGetDashboardSummaryEmptyInventory(t *testing.T) {
	gen := &stubGenerator{response: `{"focus": "A", "opportunity": "B", "caution": "C", "action": "D"}`}
	setupRouter(t, gen)

	w := postJSON("/api/dashboard/summary", `{"products": [], "pincode": "110001"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, gen.calls, "sparse inventory must still reach the model")
}

func TestGetDashboardSummaryParseFailure(t *testing.T) {
	gen := &stubGenerator{response: "no JSON here"}
	setupRouter(t, gen)

	w := postJSON("/api/dashboard/summary", `{"products": [], "pincode": "110001"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate AI summary")
}

func TestGetDashboardSummaryGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: &ai.GenerationError{Message: "failed to generate AI response"}}
	setupRouter(t, gen)

	w := postJSON("/api/dashboard/summary", `{"products": [], "pincode": "110001"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetDashboardSummaryRejectsNonJSON(t *testing.T) {
	setupRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/summary", strings.NewReader("pincode=110001"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestGetDashboardSummaryMissingPincode(t *testing.T) {
	gen := &stubGenerator{}
	setupRouter(t, gen)

	w := postJSON("/api/dashboard/summary", `{"products": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)
}

func TestAnalyzeReturns(t *testing.T) {
	gen := &stubGenerator{response: `"Add a size chart."`}
	setupRouter(t, gen)

	w := postJSON("/api/returns/analyze",
		`[{"description": "Blue Kurta", "return_reason": "Wrong Size"}]`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"insight":"Add a size chart."`)
}

func TestAnalyzeReturnsEmptyListSkipsModel(t *testing.T) {
	gen := &stubGenerator{}
	setupRouter(t, gen)

	w := postJSON("/api/returns/analyze", `[]`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ai.NoReturnsInsight)
	assert.Equal(t, 0, gen.calls)
}

func TestGetKpisIsStaticStub(t *testing.T) {
	setupRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil)
	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
