// Package material defines the normalized material record shared by every
// consumer in the application.
//
// Score fields are independently optional: a missing LIS, RIS, or CPI is
// represented as a nil pointer, never as zero. Validation happens once at the
// ingestion boundary (Catalog loading or HTTP binding); downstream consumers
// rely on a validated record and render missing values as placeholders.
package material

import (
	"errors"
	"fmt"
)

// Validation errors for material records.
var (
	ErrMissingID        = errors.New("material id is required")
	ErrMissingName      = errors.New("material name is required")
	ErrNegativeCost     = errors.New("cost per unit cannot be negative")
	ErrScoreOutOfRange  = errors.New("RIS must be between 0 and 100")
	ErrNegativeLIS      = errors.New("LIS cannot be negative")
	ErrDuplicateID      = errors.New("duplicate material id")
	ErrMaterialNotFound = errors.New("material not found")
)

// Alternative describes a better-performing substitute for a material.
type Alternative struct {
	// Name is the display name of the alternative material.
	Name string `yaml:"name" json:"name"`
	// Reason explains why the alternative scores better.
	Reason string `yaml:"reason" json:"reason"`
	// CPI is the alternative's cost-performance index, when known.
	CPI *float64 `yaml:"cpi,omitempty" json:"cpi,omitempty"`
}

// Material is the comparison subject. LIS is lower-is-better, RIS is
// higher-is-better (0-100), CPI is a currency-per-impact ratio.
type Material struct {
	// ID is the stable identifier (e.g. "rammed_earth").
	ID string `yaml:"id" json:"id"`
	// Name is the human-readable display name.
	Name string `yaml:"name" json:"name"`
	// Category groups materials (e.g. "wall system", "insulation").
	Category string `yaml:"category" json:"category"`
	// FunctionalUnit is the unit costs and carbon are expressed per
	// (e.g. "m2 wall area").
	FunctionalUnit string `yaml:"functional_unit" json:"functionalUnit"`

	// TotalCarbonKg is total embodied carbon in kg CO2e per functional unit.
	TotalCarbonKg *float64 `yaml:"total_carbon_kg,omitempty" json:"totalCarbonKg,omitempty"`
	// CostPerUnit is the cost in dollars per functional unit.
	CostPerUnit *float64 `yaml:"cost_per_unit,omitempty" json:"costPerUnit,omitempty"`

	// LIS is the Lifecycle Impact Score (lower is better, 0-100+).
	LIS *float64 `yaml:"lis,omitempty" json:"lis,omitempty"`
	// RIS is the Regenerative Impact Score (higher is better, 0-100).
	RIS *float64 `yaml:"ris,omitempty" json:"ris,omitempty"`
	// CPI is the Cost-Performance Index.
	CPI *float64 `yaml:"cpi,omitempty" json:"cpi,omitempty"`

	// BenchmarkRef labels the benchmark this material was scored against.
	BenchmarkRef string `yaml:"benchmark_ref,omitempty" json:"benchmarkRef,omitempty"`
	// InsightSummary is an optional pre-authored one-line summary.
	InsightSummary string `yaml:"insight_summary,omitempty" json:"insightSummary,omitempty"`
	// Alternatives lists better-performing substitutes.
	Alternatives []Alternative `yaml:"alternatives,omitempty" json:"alternatives,omitempty"`
	// Tags are free-form labels used by insight matching.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Validate checks the record at the ingestion boundary.
func (m Material) Validate() error {
	if m.ID == "" {
		return ErrMissingID
	}
	if m.Name == "" {
		return fmt.Errorf("%w: material %q", ErrMissingName, m.ID)
	}
	// Embodied carbon may be negative: bio-based materials sequester more
	// than their processing emits.
	if m.CostPerUnit != nil && *m.CostPerUnit < 0 {
		return fmt.Errorf("%w: material %q", ErrNegativeCost, m.ID)
	}
	if m.LIS != nil && *m.LIS < 0 {
		return fmt.Errorf("%w: material %q", ErrNegativeLIS, m.ID)
	}
	if m.RIS != nil && (*m.RIS < 0 || *m.RIS > 100) {
		return fmt.Errorf("%w: material %q", ErrScoreOutOfRange, m.ID)
	}
	return nil
}

// CarbonOrZero returns the embodied carbon, or 0 when absent.
func (m Material) CarbonOrZero() float64 { return deref(m.TotalCarbonKg) }

// CostOrZero returns the cost per unit, or 0 when absent.
func (m Material) CostOrZero() float64 { return deref(m.CostPerUnit) }

// LISOrZero returns the LIS score, or 0 when absent.
func (m Material) LISOrZero() float64 { return deref(m.LIS) }

// RISOrZero returns the RIS score, or 0 when absent.
func (m Material) RISOrZero() float64 { return deref(m.RIS) }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float is a convenience constructor for optional numeric fields, used by
// tests and fixture builders.
func Float(v float64) *float64 { return &v }
