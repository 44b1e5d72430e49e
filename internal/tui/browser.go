// Package tui implements the interactive material browser: a filterable
// table of the catalog with a detail pane that derives insight text on
// demand.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matfocus/matfocus/internal/filter"
	"github.com/matfocus/matfocus/internal/format"
	"github.com/matfocus/matfocus/internal/insight"
	"github.com/matfocus/matfocus/internal/material"
)

// focusZone identifies which widget receives key input.
type focusZone int

const (
	focusTable focusZone = iota
	focusSearch
)

// aiResultMsg delivers an asynchronous AI insight generation outcome.
type aiResultMsg struct {
	materialID string
	text       insight.Text
	err        error
}

// InsightGenerator is the slice of the insight service the browser needs.
type InsightGenerator interface {
	GenerateOrStatic(ctx context.Context, m material.Material) (insight.Text, error)
}

// BrowserModel is the root bubbletea model for the material browser.
type BrowserModel struct {
	all      []material.Material
	filtered []material.Material

	tbl    table.Model
	search textinput.Model
	focus  focusZone

	insights  InsightGenerator
	aiState   *insight.StateMachine
	aiText    map[string]insight.Text
	aiErr     string
	aiPending string

	width  int
	height int
	err    error
}

// NewBrowserModel builds the browser over the given materials. insights may
// be nil to disable AI generation.
func NewBrowserModel(materials []material.Material, insights InsightGenerator) BrowserModel {
	search := textinput.New()
	search.Placeholder = "search name or category"
	search.Prompt = "/ "
	search.CharLimit = 64

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 12},
		{Title: "Carbon", Width: 14},
		{Title: "Cost", Width: 10},
		{Title: "LIS", Width: 6},
		{Title: "RIS", Width: 6},
		{Title: "CPI", Width: 7},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := BrowserModel{
		all:      materials,
		filtered: materials,
		tbl:      tbl,
		search:   search,
		insights: insights,
		aiState:  insight.NewStateMachine(),
		aiText:   make(map[string]insight.Text),
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case aiResultMsg:
		return m.handleAIResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusSearch {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.focus = focusTable
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refreshRows()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		m.search.Focus()
		return m, nil
	case "a":
		if !m.aiState.Start() {
			return m, nil
		}
		return m.dispatchAIGeneration()
	case "r":
		if !m.aiState.Retry() {
			return m, nil
		}
		m.aiErr = ""
		return m.dispatchAIGeneration()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// dispatchAIGeneration issues the asynchronous insight request for the
// selected material. The caller has already moved the state machine to
// loading; a missing selection or generator rolls it back.
func (m BrowserModel) dispatchAIGeneration() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedMaterial()
	if !ok || m.insights == nil {
		m.aiState.Fail()
		m.aiErr = "AI insight generation is not configured"
		return m, nil
	}
	m.aiPending = selected.ID
	insights := m.insights
	return m, func() tea.Msg {
		text, err := insights.GenerateOrStatic(context.Background(), selected)
		return aiResultMsg{materialID: selected.ID, text: text, err: err}
	}
}

func (m BrowserModel) handleAIResult(msg aiResultMsg) BrowserModel {
	if msg.materialID != m.aiPending {
		return m
	}
	m.aiPending = ""
	if msg.err != nil {
		m.aiState.Fail()
		m.aiErr = msg.err.Error()
		// The fallback text is still displayable.
		m.aiText[msg.materialID] = msg.text
		return m
	}
	m.aiState.Succeed()
	m.aiErr = ""
	m.aiText[msg.materialID] = msg.text
	return m
}

// refreshRows re-applies the search filter and rebuilds the table rows.
func (m *BrowserModel) refreshRows() {
	m.filtered = filter.Apply(m.all, filter.State{Search: m.search.Value()})

	rows := make([]table.Row, 0, len(m.filtered))
	for _, mat := range m.filtered {
		rows = append(rows, table.Row{
			mat.Name,
			mat.Category,
			format.FormatCarbon(mat.TotalCarbonKg),
			format.FormatCurrency(mat.CostPerUnit),
			format.FormatScore(mat.LIS),
			format.FormatScore(mat.RIS),
			format.FormatCPI(mat.CPI),
		})
	}
	m.tbl.SetRows(rows)
	if m.tbl.Cursor() >= len(rows) {
		m.tbl.SetCursor(0)
	}
}

// selectedMaterial returns the material under the table cursor.
func (m BrowserModel) selectedMaterial() (material.Material, bool) {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return material.Material{}, false
	}
	return m.filtered[idx], true
}

// Run starts the browser program on the terminal.
func Run(materials []material.Material, insights InsightGenerator) error {
	program := tea.NewProgram(NewBrowserModel(materials, insights), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
