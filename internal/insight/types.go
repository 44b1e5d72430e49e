// Package insight derives explanatory text for material scores through
// three independent paths: deterministic rule-based generation, a curated
// canonical-content registry, and delegation to an external AI provider
// with caching and a static fallback.
package insight

// Source tags where an insight text came from.
type Source string

// Insight sources.
const (
	SourceStatic    Source = "static"
	SourceCanonical Source = "canonical"
	SourceAI        Source = "ai"
)

// Quadrant classifies a material by its LIS/RIS combination.
type Quadrant string

// Quadrant labels. Regenerative is the good corner (low LIS, high RIS),
// problematic the bad one.
const (
	QuadrantRegenerative Quadrant = "regenerative"
	QuadrantTransitional Quadrant = "transitional"
	QuadrantCostly       Quadrant = "costly"
	QuadrantProblematic  Quadrant = "problematic"
	QuadrantUnknown      Quadrant = "unknown"
)

// CPIBand is the ordered cost-performance classification.
type CPIBand string

// CPI bands from best to worst value.
const (
	CPIBandEfficient CPIBand = "efficient"
	CPIBandMidRange  CPIBand = "mid-range"
	CPIBandPremium   CPIBand = "premium"
	CPIBandUnknown   CPIBand = "unknown"
)

// RISComponents breaks the Regenerative Impact Score into its heuristic
// parts (each 0-100).
type RISComponents struct {
	Durability    float64 `json:"durability"`
	Circularity   float64 `json:"circularity"`
	Renewability  float64 `json:"renewability"`
	ToxicityScore float64 `json:"toxicityScore"`
}

// Scores bundles the metrics an insight derivation works from. Computed per
// request, never persisted.
type Scores struct {
	LIS           *float64       `json:"lis,omitempty"`
	RIS           *float64       `json:"ris,omitempty"`
	CPI           *float64       `json:"cpi,omitempty"`
	Quadrant      Quadrant       `json:"quadrant"`
	CPIBand       CPIBand        `json:"cpiBand"`
	RISComponents *RISComponents `json:"risComponents,omitempty"`
	// ParisAlignment is the percentage of the Paris-aligned carbon budget
	// this material's lifecycle fits within.
	ParisAlignment *float64 `json:"parisAlignment,omitempty"`
}

// Text is a derived insight ready for display.
type Text struct {
	// Headline is the short takeaway line.
	Headline string `json:"headline"`
	// Details carries optional supporting prose.
	Details string `json:"details,omitempty"`
	// Source tags the production path.
	Source Source `json:"source"`
	// Model identifies the AI model when Source is SourceAI.
	Model string `json:"model,omitempty"`
}

// ContextType identifies what an InsightContext describes.
type ContextType string

// Context types for canonical matching.
const (
	ContextMaterial   ContextType = "material"
	ContextAssembly   ContextType = "assembly"
	ContextComparison ContextType = "comparison"
)

// Context is the runtime situation matched against the canonical registry.
type Context struct {
	// Type states whether this is a single material, an assembly, or a
	// comparison view.
	Type ContextType `json:"type"`
	// PrimaryID is the material in focus.
	PrimaryID string `json:"primaryId,omitempty"`
	// SecondaryID is the comparison partner, when Type is comparison.
	SecondaryID string `json:"secondaryId,omitempty"`
	// MaterialIDs lists every material on screen.
	MaterialIDs []string `json:"materialIds,omitempty"`
	// Tags carries free-form context labels.
	Tags []string `json:"tags,omitempty"`
}
