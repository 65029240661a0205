// Package kinematics provides the relativistic energy-velocity-pitch-angle
// relations for beta-decay electrons moving in a magnetic field, plus
// tritium decay rates. Kinetic energies are in eV, fields in tesla, angles
// in radians.
package kinematics

import (
	"math"

	"github.com/tritium-lab/escatter/internal/constants"
)

// Gamma returns the Lorentz factor for kinetic energy T.
func Gamma(T float64) float64 {
	return 1 + T/constants.ElectronRestEnergyEV
}

// Beta returns v/c for kinetic energy T.
func Beta(T float64) float64 {
	g := Gamma(T)
	return math.Sqrt(1 - 1/(g*g))
}

// Speed returns the electron speed in m/s.
func Speed(T float64) float64 {
	return Beta(T) * constants.SpeedOfLight
}

// Momentum returns the relativistic momentum in kg m/s.
func Momentum(T float64) float64 {
	return Gamma(T) * constants.ElectronMass * Speed(T)
}

// VelocityComponents splits the speed at pitch angle (the angle between the
// velocity and the magnetic field) into parallel and perpendicular parts.
func VelocityComponents(T, pitch float64) (vPar, vPerp float64) {
	v := Speed(T)
	return v * math.Cos(pitch), v * math.Sin(pitch)
}

// CyclotronFrequency returns the relativistic cyclotron frequency
// eB / (2 pi gamma m) in Hz for field strength B.
func CyclotronFrequency(T, B float64) float64 {
	return constants.ElectronCharge * B / (2 * math.Pi * Gamma(T) * constants.ElectronMass)
}

// CyclotronRadius returns the gyroradius gamma m v_perp / (e B) in metres
// for an electron at pitch angle pitch in field B.
func CyclotronRadius(T, B, pitch float64) float64 {
	_, vPerp := VelocityComponents(T, pitch)
	return Gamma(T) * constants.ElectronMass * vPerp / (constants.ElectronCharge * B)
}
