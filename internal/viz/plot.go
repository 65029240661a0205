// Package viz renders cross-section curves in the terminal: static
// asciigraph plots and an interactive bubbletea explorer.
package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/tritium-lab/escatter/internal/scan"
)

// PlotSeries renders a sampled curve as an ascii graph. With logY the
// values are plotted as log10; zeros (below-threshold points) are clipped
// to one decade under the smallest positive value so the threshold edge
// stays visible.
func PlotSeries(s *scan.Series, logY bool, width, height int) string {
	if len(s.Values) == 0 {
		return "no data"
	}

	data := make([]float64, len(s.Values))
	copy(data, s.Values)

	caption := fmt.Sprintf("%s: cross-section (m^2) vs energy (%g - %g eV)",
		s.Label, s.Energies[0], s.Energies[len(s.Energies)-1])

	if logY {
		minPos := math.Inf(1)
		for _, v := range data {
			if v > 0 && v < minPos {
				minPos = v
			}
		}
		if math.IsInf(minPos, 1) {
			return "no positive values to plot"
		}
		floor := math.Log10(minPos) - 1
		for i, v := range data {
			if v > 0 {
				data[i] = math.Log10(v)
			} else {
				data[i] = floor
			}
		}
		caption = fmt.Sprintf("%s: log10 cross-section (m^2) vs energy (%g - %g eV)",
			s.Label, s.Energies[0], s.Energies[len(s.Energies)-1])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
