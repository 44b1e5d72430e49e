package tui

import (
	"fmt"
	"strings"

	"github.com/matfocus/matfocus/internal/equiv"
	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/material"
)

// View implements tea.Model.
func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("matfocus material browser"))
	b.WriteString("\n\n")

	if m.focus == focusSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(m.tbl.View())
	b.WriteString("\n")

	if selected, ok := m.selectedMaterial(); ok {
		b.WriteString(m.renderDetail(selected))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("↑/↓ navigate · / search · a ai insight · r retry · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m BrowserModel) renderDetail(selected material.Material) string {
	scores := insight.DeriveScores(selected)

	var b strings.Builder
	b.WriteString(ValueStyle.Render(selected.Name))
	b.WriteString(MutedStyle.Render(fmt.Sprintf("  (%s)", selected.Category)))
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Quadrant: "))
	b.WriteString(renderQuadrant(scores.Quadrant))
	b.WriteString(LabelStyle.Render("  CPI band: "))
	b.WriteString(ValueStyle.Render(string(scores.CPIBand)))
	if scores.ParisAlignment != nil {
		b.WriteString(LabelStyle.Render("  Paris alignment: "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.0f%%", *scores.ParisAlignment)))
	}
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("Carbon: "))
	b.WriteString(ValueStyle.Render(format.FormatCarbon(selected.TotalCarbonKg)))
	if selected.TotalCarbonKg != nil {
		if compact := equiv.Compact(*selected.TotalCarbonKg); compact != "" {
			b.WriteString(MutedStyle.Render(" " + compact))
		}
	}
	b.WriteString(LabelStyle.Render("  Cost: "))
	b.WriteString(ValueStyle.Render(format.FormatCurrency(selected.CostPerUnit)))
	b.WriteString(LabelStyle.Render("  CPI: "))
	b.WriteString(ValueStyle.Render(format.FormatCPI(selected.CPI)))
	b.WriteString("\n")

	b.WriteString(m.renderInsightLine(selected))

	return DetailBoxStyle.Render(b.String())
}

// renderInsightLine shows the AI text, loading indicator, or error for the
// selected material.
func (m BrowserModel) renderInsightLine(selected material.Material) string {
	if m.aiState.State() == insight.StateLoading && m.aiPending == selected.ID {
		return MutedStyle.Render("generating insight...")
	}
	if m.aiErr != "" && m.aiState.State() == insight.StateError {
		line := BadStyle.Render("insight unavailable: " + m.aiErr)
		if text, ok := m.aiText[selected.ID]; ok && text.Headline != "" {
			line += "\n" + ValueStyle.Render(text.Headline)
		}
		return line + "\n" + MutedStyle.Render("press r to retry")
	}
	if text, ok := m.aiText[selected.ID]; ok && text.Headline != "" {
		return ValueStyle.Render(text.Headline)
	}
	return MutedStyle.Render("press a for an AI insight")
}

func renderQuadrant(q insight.Quadrant) string {
	switch q {
	case insight.QuadrantRegenerative:
		return GoodStyle.Render(string(q))
	case insight.QuadrantProblematic:
		return BadStyle.Render(string(q))
	default:
		return ValueStyle.Render(string(q))
	}
}
