package insight

import (
	"fmt"
	"strings"

	"github.com/matfocus/matfocus/internal/material"
)

// Driver is a per-metric statement explaining what pushes the overall
// assessment up or down.
type Driver struct {
	// Metric names the score ("LIS", "RIS", "CPI").
	Metric string `json:"metric"`
	// Positive frames whether the metric crossed its good threshold.
	Positive bool `json:"positive"`
	// Statement is the display sentence.
	Statement string `json:"statement"`
}

// StaticInsight is the deterministic, rule-based derivation. Same input,
// same output, no external calls.
type StaticInsight struct {
	// Takeaway is the single-sentence summary.
	Takeaway string `json:"takeaway"`
	// Drivers explains each available metric.
	Drivers []Driver `json:"drivers"`
	// ConfidenceNotes flags missing inputs that limit the assessment.
	ConfidenceNotes []string `json:"confidenceNotes,omitempty"`
	// NextActions are fixed suggestions parameterized by material name.
	NextActions []string `json:"nextActions"`
}

// BuildStaticInsight derives tier-based insight text for a material. Every
// sentence comes from a fixed template; the only free variable is the
// material's name and scores.
func BuildStaticInsight(m material.Material) StaticInsight {
	var drivers []Driver
	var notes []string

	if m.LIS != nil {
		tier := LISTier(*m.LIS)
		drivers = append(drivers, Driver{
			Metric:   "LIS",
			Positive: tier == "low",
			Statement: fmt.Sprintf("%s carries a %s lifecycle impact score of %.1f.",
				m.Name, tier, *m.LIS),
		})
	} else {
		notes = append(notes, "No lifecycle impact score is available; the lifecycle assessment is incomplete.")
	}

	if m.RIS != nil {
		tier := RISTier(*m.RIS)
		drivers = append(drivers, Driver{
			Metric:   "RIS",
			Positive: tier == "strong",
			Statement: fmt.Sprintf("Regenerative performance is %s at %.1f out of 100.",
				tier, *m.RIS),
		})
	} else {
		notes = append(notes, "No regenerative impact score is available; durability and circularity are unassessed.")
	}

	if m.CPI != nil {
		tier := CPITier(*m.CPI)
		drivers = append(drivers, Driver{
			Metric:   "CPI",
			Positive: tier == "efficient",
			Statement: fmt.Sprintf("Cost-performance is %s: each impact point costs %.2f.",
				tier, *m.CPI),
		})
	} else {
		notes = append(notes, "No cost-performance index is available; value-for-impact cannot be ranked.")
	}

	return StaticInsight{
		Takeaway:        takeawayFor(m, drivers),
		Drivers:         drivers,
		ConfidenceNotes: notes,
		NextActions: []string{
			fmt.Sprintf("Compare %s against the category benchmark before specifying.", m.Name),
			fmt.Sprintf("Request an environmental product declaration for %s from the supplier.", m.Name),
		},
	}
}

// takeawayFor builds the summary sentence from the positive/negative driver
// balance.
func takeawayFor(m material.Material, drivers []Driver) string {
	if len(drivers) == 0 {
		return fmt.Sprintf("%s has no scored metrics yet; add scores to generate an assessment.", m.Name)
	}

	positive := 0
	for _, d := range drivers {
		if d.Positive {
			positive++
		}
	}

	switch {
	case positive == len(drivers):
		return fmt.Sprintf("%s performs well on every scored metric.", m.Name)
	case positive == 0:
		return fmt.Sprintf("%s underperforms on every scored metric; consider the listed alternatives.", m.Name)
	default:
		return fmt.Sprintf("%s shows mixed results: strong on %d of %d scored metrics.",
			m.Name, positive, len(drivers))
	}
}

// StaticText condenses a StaticInsight into the display Text shape used by
// the service fallback and the HTTP API.
func StaticText(m material.Material) Text {
	static := BuildStaticInsight(m)

	var details []string
	for _, d := range static.Drivers {
		details = append(details, d.Statement)
	}
	details = append(details, static.ConfidenceNotes...)

	return Text{
		Headline: static.Takeaway,
		Details:  strings.Join(details, " "),
		Source:   SourceStatic,
	}
}
