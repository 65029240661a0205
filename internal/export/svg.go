// Package export renders scanned cross-section curves as standalone SVG
// documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/tritium-lab/escatter/internal/scan"
)

// CurveSVG plots a series as an SVG polyline. With logX/logY the respective
// axis is log10; points with non-positive values are dropped on log axes.
func CurveSVG(s *scan.Series, width, height int, logX, logY bool) string {
	xs := make([]float64, 0, len(s.Energies))
	ys := make([]float64, 0, len(s.Energies))
	for i := range s.Energies {
		x, y := s.Energies[i], s.Values[i]
		if logX {
			if x <= 0 {
				continue
			}
			x = math.Log10(x)
		}
		if logY {
			if y <= 0 {
				continue
			}
			y = math.Log10(y)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ff88" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i := range xs {
		px := (xs[i] - minX) / rangeX * float64(width)
		py := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}
	sb.WriteString("\"/>\n")

	label := s.Label
	if label != "" {
		sb.WriteString(fmt.Sprintf(`<text x="12" y="20" fill="#888899" font-family="monospace" font-size="13">%s</text>`+"\n", label))
	}
	axis := func(v float64, log bool) string {
		if log {
			return fmt.Sprintf("1e%.1f", v)
		}
		return fmt.Sprintf("%.4g", v)
	}
	sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="#666688" font-family="monospace" font-size="11">%s eV</text>`+"\n",
		height-8, axis(minX, logX)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#666688" font-family="monospace" font-size="11" text-anchor="end">%s eV</text>`+"\n",
		width-12, height-8, axis(maxX, logX)))

	sb.WriteString("</svg>")
	return sb.String()
}
