// Package analysis derives summary quantities from sampled cross-section
// curves: peak location, onset energy, and power-law slopes of the
// high-energy tail.
package analysis

import "math"

// Peak returns the energy and value of the maximum of the sampled curve.
// Empty input returns zeros.
func Peak(energies, values []float64) (peakE, peakV float64) {
	for i, v := range values {
		if v > peakV {
			peakE, peakV = energies[i], v
		}
	}
	return peakE, peakV
}

// Onset returns the first grid energy with a non-zero value. The second
// return is false when the curve is zero everywhere.
func Onset(energies, values []float64) (float64, bool) {
	for i, v := range values {
		if v > 0 {
			return energies[i], true
		}
	}
	return 0, false
}

// LogLogSlope fits the least-squares slope of log(value) against
// log(energy) over the window [lo, hi]. Points with non-positive values are
// skipped. NaN is returned when fewer than two usable points remain.
func LogLogSlope(energies, values []float64, lo, hi float64) float64 {
	var n float64
	var sx, sy, sxx, sxy float64
	for i, e := range energies {
		if e < lo || e > hi || values[i] <= 0 {
			continue
		}
		x := math.Log(e)
		y := math.Log(values[i])
		n++
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	if n < 2 {
		return math.NaN()
	}
	denom := n*sxx - sx*sx
	if denom == 0 {
		return math.NaN()
	}
	return (n*sxy - sx*sy) / denom
}
