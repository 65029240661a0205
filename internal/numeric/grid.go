// Package numeric provides the small numerical primitives the cross-section
// models are built on: evaluation grids, fixed-order Gauss-Legendre
// quadrature and piecewise-linear table interpolation.
package numeric

import "math"

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Logspace returns n logarithmically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func Logspace(lo, hi float64, n int) []float64 {
	out := Linspace(math.Log10(lo), math.Log10(hi), n)
	for i, v := range out {
		out[i] = math.Pow(10, v)
	}
	if n > 1 {
		out[0] = lo
		out[n-1] = hi
	}
	return out
}
