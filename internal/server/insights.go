package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/material"
)

// InsightGenerator is the slice of the insight service the handler needs.
type InsightGenerator interface {
	Generate(ctx context.Context, input insight.GenerateInput) (insight.Text, error)
}

// InsightRequest is the POST /api/insights body. Scores are optional; the
// handler derives what it can from whatever subset arrives. When MaterialID
// names a catalog entry, missing fields are filled from the catalog.
type InsightRequest struct {
	MaterialID    string                 `json:"materialId" binding:"required"`
	MaterialName  string                 `json:"materialName,omitempty"`
	LIS           *float64               `json:"lis,omitempty"`
	RIS           *float64               `json:"ris,omitempty"`
	CPI           *float64               `json:"cpi,omitempty"`
	TotalCarbonKg *float64               `json:"totalCarbonKg,omitempty"`
	RISComponents *insight.RISComponents `json:"risComponents,omitempty"`
	// Quadrant and ParisAlignment override the derived values when the
	// caller already classified the material.
	Quadrant       insight.Quadrant `json:"quadrant,omitempty"`
	ParisAlignment *float64         `json:"parisAlignment,omitempty"`
	// UseAI requests AI-generated text. False returns static text only.
	UseAI bool `json:"useAI,omitempty"`
}

// InsightResponse is the successful answer: the derived score bundle plus
// displayable text. AIError, when set, explains why Insight fell back from
// the requested AI source.
type InsightResponse struct {
	Scores  insight.Scores `json:"scores"`
	Insight insight.Text   `json:"insight"`
	AIError string         `json:"aiError,omitempty"`
}

// InsightHandler serves the insight API.
type InsightHandler struct {
	catalog  *material.Catalog
	insights InsightGenerator
	logger   zerolog.Logger
}

// NewInsightHandler wires the handler. catalog may be nil when only
// caller-supplied scores are expected.
func NewInsightHandler(catalog *material.Catalog, insights InsightGenerator, logger zerolog.Logger) *InsightHandler {
	return &InsightHandler{catalog: catalog, insights: insights, logger: logger}
}

// Generate handles POST /api/insights.
func (h *InsightHandler) Generate(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	m := h.resolveMaterial(req)
	scores := insight.DeriveScores(m)
	scores.RISComponents = req.RISComponents
	if req.Quadrant != "" {
		scores.Quadrant = req.Quadrant
	}
	if req.ParisAlignment != nil {
		scores.ParisAlignment = req.ParisAlignment
	}

	resp := InsightResponse{Scores: scores}

	if !req.UseAI {
		resp.Insight = insight.StaticText(m)
		c.JSON(http.StatusOK, resp)
		return
	}

	text, err := h.insights.Generate(c.Request.Context(), insight.GenerateInput{
		MaterialID:   m.ID,
		MaterialName: m.Name,
		LIS:          m.LIS,
		RIS:          m.RIS,
		CPI:          m.CPI,
	})
	if err != nil {
		h.logger.Warn().
			Str("component", "server").
			Str("material_id", m.ID).
			Err(err).
			Msg("AI insight unavailable, serving fallback")
		resp.AIError = err.Error()
		if text.Headline == "" {
			text = insight.StaticText(m)
		}
	}
	resp.Insight = text

	c.JSON(http.StatusOK, resp)
}

// ListMaterials handles GET /api/materials.
func (h *InsightHandler) ListMaterials(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusOK, gin.H{"materials": []material.Material{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": h.catalog.Materials()})
}

// GetMaterial handles GET /api/materials/:id.
func (h *InsightHandler) GetMaterial(c *gin.Context) {
	id := c.Param("id")
	if h.catalog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found: " + id})
		return
	}
	m, err := h.catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// resolveMaterial merges the request over the catalog entry when the id is
// known. Request fields win, so callers can probe what-if scores against a
// catalog material.
func (h *InsightHandler) resolveMaterial(req InsightRequest) material.Material {
	m := material.Material{
		ID:            req.MaterialID,
		Name:          req.MaterialName,
		LIS:           req.LIS,
		RIS:           req.RIS,
		CPI:           req.CPI,
		TotalCarbonKg: req.TotalCarbonKg,
	}

	if h.catalog == nil {
		return m
	}
	base, err := h.catalog.Get(req.MaterialID)
	if err != nil {
		return m
	}

	if m.Name == "" {
		m.Name = base.Name
	}
	if m.LIS == nil {
		m.LIS = base.LIS
	}
	if m.RIS == nil {
		m.RIS = base.RIS
	}
	if m.CPI == nil {
		m.CPI = base.CPI
	}
	if m.TotalCarbonKg == nil {
		m.TotalCarbonKg = base.TotalCarbonKg
	}
	return m
}
