// Package analysis provides shape diagnostics for cross-section curves.
//
// The package characterizes a sampled curve sigma(E):
//
//   - [Peak]: energy and value of the curve maximum
//   - [Onset]: first energy with a non-zero value
//   - [LogLogSlope]: least-squares power-law exponent over an energy window
//
// # Asymptotic behaviour
//
// The high-energy tail of a cross-section usually follows a power law.
// Fit it over the last decade of a scan:
//
//	slope := analysis.LogLogSlope(energies, values, eMax/10, eMax)
package analysis
