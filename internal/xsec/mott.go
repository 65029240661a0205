package xsec

import (
	"math"

	"github.com/tritium-lab/escatter/internal/constants"
)

// DefaultCutoffAngle is the default small-angle screening cutoff for the
// Mott total cross-section, in radians. The unscreened Rutherford integral
// diverges as theta -> 0, so the total is only defined above a cutoff.
const DefaultCutoffAngle = 0.010

// Mott is the elastic electron-nucleus cross-section for tritium (Z=1):
// the Rutherford differential cross-section times the Mott recoil factor.
type Mott struct {
	// CutoffAngle is the minimum scattering angle included in TotalXSec,
	// in radians.
	CutoffAngle float64
}

func NewMott() *Mott {
	return &Mott{CutoffAngle: DefaultCutoffAngle}
}

func (m *Mott) Name() string       { return "mott" }
func (m *Mott) Threshold() float64 { return 0 }

// recoil is T_kinetic / (M c^2) for the tritium nucleus.
func recoil(T float64) float64 {
	nuclMass := constants.TritiumMassU * constants.AtomicMassUnit
	return constants.EV2J(T) / (nuclMass * constants.SpeedOfLight * constants.SpeedOfLight)
}

// rutherfordDCS is the Rutherford cross-section per unit cos(theta) for Z=1,
// in m^2.
func rutherfordDCS(T, cosTheta float64) float64 {
	hbarC := constants.HBar * constants.SpeedOfLight
	r := hbarC / constants.EV2J(T)
	return (math.Pi / 2) * constants.FineStructure * constants.FineStructure * r * r / ((1 - cosTheta) * (1 - cosTheta))
}

func (m *Mott) dcsCos(T, cosTheta float64) float64 {
	mottFactor := ((1 + cosTheta) / 2) / (1 + (1-cosTheta)*recoil(T))
	return rutherfordDCS(T, cosTheta) * mottFactor
}

// DCS returns the Mott cross-section per unit cos(theta) at scattering angle
// theta, in m^2.
func (m *Mott) DCS(T, theta float64) float64 {
	if T <= 0 {
		return 0
	}
	return m.dcsCos(T, math.Cos(theta))
}

// TotalXSec integrates the DCS over cos(theta) in [-1, cos(CutoffAngle)].
// With x = 1 - cos(theta) and k the recoil term, the integrand
// (2-x)/(2 x^2 (1+kx)) has the antiderivative
//
//	F(x) = (1+2k) ln((1+kx)/x) - 2/x
//
// so the integral is evaluated in closed form.
func (m *Mott) TotalXSec(T float64) float64 {
	if T <= 0 {
		return 0
	}
	cutoff := m.CutoffAngle
	if cutoff <= 0 {
		cutoff = DefaultCutoffAngle
	}

	hbarC := constants.HBar * constants.SpeedOfLight
	r := hbarC / constants.EV2J(T)
	prefac := (math.Pi / 2) * constants.FineStructure * constants.FineStructure * r * r

	k := recoil(T)
	antideriv := func(x float64) float64 {
		return (1+2*k)*math.Log((1+k*x)/x) - 2/x
	}
	x0 := 1 - math.Cos(cutoff)
	return (prefac / 2) * (antideriv(2) - antideriv(x0))
}
