package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tritium-lab/escatter/internal/kinematics"
	"github.com/tritium-lab/escatter/internal/scan"
	"github.com/tritium-lab/escatter/internal/xsec"
)

const (
	plotWidth  = 80
	plotHeight = 16
)

// Explorer is a bubbletea model that walks an energy cursor along a
// cross-section curve and shows the scattering and transport quantities at
// the cursor.
type Explorer struct {
	curve  xsec.Curve
	series scan.Series
	cursor int
	field  float64 // [T]
	logY   bool
}

// NewExplorer precomputes the curve over the grid and places the cursor at
// the upper end of the grid.
func NewExplorer(curve xsec.Curve, grid scan.Grid, field float64) Explorer {
	energies := grid.Energies()
	values := make([]float64, len(energies))
	for i, T := range energies {
		values[i] = curve.TotalXSec(T)
	}
	return Explorer{
		curve:  curve,
		series: scan.Series{Label: curve.Name(), Energies: energies, Values: values},
		cursor: len(energies) - 1,
		field:  field,
		logY:   true,
	}
}

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "left", "h":
			e.moveCursor(-1)
		case "right", "l":
			e.moveCursor(1)
		case "shift+left", "H":
			e.moveCursor(-10)
		case "shift+right", "L":
			e.moveCursor(10)
		case "home":
			e.cursor = 0
		case "end":
			e.cursor = len(e.series.Energies) - 1
		case "g":
			e.logY = !e.logY
		}
	}
	return e, nil
}

func (e *Explorer) moveCursor(delta int) {
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor >= len(e.series.Energies) {
		e.cursor = len(e.series.Energies) - 1
	}
}

func (e Explorer) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(e.series.Label)) + "\n")
	s.WriteString(plotStyle.Render(PlotSeries(&e.series, e.logY, plotWidth, plotHeight)))
	s.WriteString("\n")

	T := e.series.Energies[e.cursor]
	sigma := e.series.Values[e.cursor]

	rows := []struct {
		label string
		value string
	}{
		{"energy", fmt.Sprintf("%.4g eV", T)},
		{"cross-section", fmt.Sprintf("%.6e m^2", sigma)},
		{"threshold", fmt.Sprintf("%.4g eV", e.curve.Threshold())},
		{"beta (v/c)", fmt.Sprintf("%.6f", kinematics.Beta(T))},
		{"speed", fmt.Sprintf("%.4e m/s", kinematics.Speed(T))},
		{"cyclotron freq", fmt.Sprintf("%.4e Hz at %.2g T", kinematics.CyclotronFrequency(T, e.field), e.field)},
	}
	if sd, ok := e.curve.(xsec.SecondaryDifferential); ok {
		w := (T - e.curve.Threshold()) / 4
		if w > 0 {
			rows = append(rows, struct{ label, value string }{
				"sdcs (W=av/2)", fmt.Sprintf("%.4e m^2/eV", sd.SDCS(T, w)),
			})
		}
	}

	var stats strings.Builder
	stats.WriteString(cursorStyle.Render(fmt.Sprintf("cursor %d/%d", e.cursor+1, len(e.series.Energies))) + "\n")
	for _, row := range rows {
		stats.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}
	s.WriteString(statsStyle.Render(stats.String()))

	s.WriteString(helpStyle.Render("←/→ move  shift+←/→ jump  g log/linear  q quit"))
	return s.String()
}
