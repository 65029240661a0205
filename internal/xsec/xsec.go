// Package xsec implements electron-impact cross-section models for atomic
// hydrogen and tritium gas:
//
//   - [Mott]: elastic electron-nucleus scattering (Rutherford with recoil)
//   - [Rudd]: semi-empirical ionisation model, M. E. Rudd, Phys. Rev. A 44 (1991)
//   - [Kim]: binary-encounter-dipole ionisation, Kim & Rudd, Phys. Rev. A 50 (1994)
//   - [Stone]: 1s -> 2p/3p excitation tables, Stone, Kim & Desclaux (2002)
//
// Energies are in eV, angles in radians, cross-sections in m^2 (differential
// forms in m^2/eV). Models return 0 outside their physical domain instead of
// propagating NaN.
package xsec

// Curve is a total cross-section as a function of the primary electron
// kinetic energy in eV.
type Curve interface {
	Name() string
	// Threshold is the minimum primary energy for a non-zero cross-section,
	// in eV. Elastic models report 0.
	Threshold() float64
	// TotalXSec returns the total cross-section in m^2 at primary kinetic
	// energy T. Below Threshold it returns exactly 0.
	TotalXSec(T float64) float64
}

// SecondaryDifferential is implemented by ionisation models that resolve the
// ejected electron energy.
type SecondaryDifferential interface {
	Curve
	// SDCS is the singly differential cross-section in the secondary energy
	// W, in m^2/eV. The valid domain is W in [0, (T-Threshold)/2].
	SDCS(T, W float64) float64
}

// AngularDifferential is implemented by models that resolve the scattering
// angle of the outgoing electron.
type AngularDifferential interface {
	Curve
	// DCS is the differential cross-section per unit cos(theta) at
	// scattering angle theta, in m^2.
	DCS(T, theta float64) float64
}
