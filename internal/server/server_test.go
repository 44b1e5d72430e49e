package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/material"
)

type stubGenerator struct {
	text insight.Text
	err  error
}

func (s *stubGenerator) Generate(context.Context, insight.GenerateInput) (insight.Text, error) {
	return s.text, s.err
}

func testCatalog(t *testing.T) *material.Catalog {
	t.Helper()
	catalog, err := material.NewCatalog([]material.Material{
		{
			ID:            "rammed_earth",
			Name:          "Rammed Earth",
			Category:      "structural",
			TotalCarbonKg: material.Float(31),
			CostPerUnit:   material.Float(28),
			LIS:           material.Float(24.5),
			RIS:           material.Float(78),
			CPI:           material.Float(9.1),
		},
		{
			ID:       "reclaimed_brick",
			Name:     "Reclaimed Brick",
			Category: "structural",
			RIS:      material.Float(82),
		},
	})
	require.NoError(t, err)
	return catalog
}

func newTestRouter(t *testing.T, gen InsightGenerator) http.Handler {
	t.Helper()
	handler := NewInsightHandler(testCatalog(t), gen, zerolog.Nop())
	return NewRouter(handler, zerolog.Nop())
}

func postInsights(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateStaticOnly(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{err: errors.New("should not be called")})

	rec := postInsights(t, router, InsightRequest{MaterialID: "rammed_earth"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, insight.SourceStatic, resp.Insight.Source)
	assert.NotEmpty(t, resp.Insight.Headline)
	assert.Empty(t, resp.AIError)
	// Catalog fill-in: scores come from the catalog entry.
	require.NotNil(t, resp.Scores.LIS)
	assert.InDelta(t, 24.5, *resp.Scores.LIS, 0.001)
	assert.Equal(t, insight.QuadrantRegenerative, resp.Scores.Quadrant)
	assert.Equal(t, insight.CPIBandEfficient, resp.Scores.CPIBand)
}

func TestGenerateAISuccess(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{
		text: insight.Text{Headline: "excellent choice", Source: insight.SourceAI, Model: "test-model"},
	})

	rec := postInsights(t, router, InsightRequest{MaterialID: "rammed_earth", UseAI: true})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, insight.SourceAI, resp.Insight.Source)
	assert.Equal(t, "excellent choice", resp.Insight.Headline)
	assert.Equal(t, "test-model", resp.Insight.Model)
	assert.Empty(t, resp.AIError)
}

func TestGenerateAIFailureFallsBackToStatic(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{err: errors.New("quota exceeded")})

	rec := postInsights(t, router, InsightRequest{MaterialID: "rammed_earth", UseAI: true})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, insight.SourceStatic, resp.Insight.Source)
	assert.NotEmpty(t, resp.Insight.Headline)
	assert.Contains(t, resp.AIError, "quota exceeded")
}

func TestGenerateAIFailureKeepsRetainedText(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{
		text: insight.Text{Headline: "retained from earlier", Source: insight.SourceAI},
		err:  errors.New("transient"),
	})

	rec := postInsights(t, router, InsightRequest{MaterialID: "rammed_earth", UseAI: true})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Retained AI text survives over a fresh static derivation.
	assert.Equal(t, "retained from earlier", resp.Insight.Headline)
	assert.Contains(t, resp.AIError, "transient")
}

func TestGenerateRequestScoresWinOverCatalog(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	rec := postInsights(t, router, InsightRequest{
		MaterialID: "rammed_earth",
		LIS:        material.Float(90),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Scores.LIS)
	assert.InDelta(t, 90.0, *resp.Scores.LIS, 0.001)
	// High LIS with the catalog's high RIS lands in costly, not regenerative.
	assert.Equal(t, insight.QuadrantCostly, resp.Scores.Quadrant)
}

func TestGenerateSuppliedClassificationsWin(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	rec := postInsights(t, router, InsightRequest{
		MaterialID:     "rammed_earth",
		Quadrant:       insight.QuadrantProblematic,
		ParisAlignment: material.Float(12.5),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// The caller's classification overrides the derived one, even though
	// the catalog scores would put rammed earth in the regenerative corner.
	assert.Equal(t, insight.QuadrantProblematic, resp.Scores.Quadrant)
	require.NotNil(t, resp.Scores.ParisAlignment)
	assert.InDelta(t, 12.5, *resp.Scores.ParisAlignment, 0.001)
}

func TestGenerateUnknownMaterialUsesRequestOnly(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	rec := postInsights(t, router, InsightRequest{
		MaterialID:   "custom_material",
		MaterialName: "Custom",
		CPI:          material.Float(40),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, insight.QuadrantUnknown, resp.Scores.Quadrant)
	assert.Equal(t, insight.CPIBandMidRange, resp.Scores.CPIBand)
}

func TestGenerateMissingMaterialID(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	rec := postInsights(t, router, map[string]any{"useAI": true})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRISComponentsEcho(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	rec := postInsights(t, router, InsightRequest{
		MaterialID: "rammed_earth",
		RISComponents: &insight.RISComponents{
			Durability:   85,
			Circularity:  70,
			Renewability: 60,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp InsightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Scores.RISComponents)
	assert.InDelta(t, 85.0, resp.Scores.RISComponents.Durability, 0.001)
}

func TestListMaterials(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Materials []material.Material `json:"materials"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Materials, 2)
}

func TestGetMaterial(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/materials/rammed_earth", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var m material.Material
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "Rammed Earth", m.Name)
}

func TestGetMaterialNotFound(t *testing.T) {
	router := newTestRouter(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/materials/unobtainium", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerGracefulShutdown(t *testing.T) {
	srv := New(Options{
		Addr:     "127.0.0.1:0",
		Catalog:  testCatalog(t),
		Insights: &stubGenerator{},
		Logger:   zerolog.Nop(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
