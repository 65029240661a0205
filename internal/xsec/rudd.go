package xsec

import (
	"math"

	"github.com/tritium-lab/escatter/internal/constants"
	"github.com/tritium-lab/escatter/internal/numeric"
)

// Rudd is the semi-empirical electron-impact ionisation model for atomic
// hydrogen from M. E. Rudd, Phys. Rev. A 44 (1991).
type Rudd struct{}

func NewRudd() *Rudd { return &Rudd{} }

func (r *Rudd) Name() string       { return "rudd" }
func (r *Rudd) Threshold() float64 { return constants.IonizationEnergyH }

// Fit parameters from the paper.
const (
	ruddA1, ruddA2, ruddA3 = 0.74, 0.87, -0.6
	ruddN                  = 2.4
	ruddBeta               = 0.6
	ruddGamma              = 10.0
	ruddGs                 = 2.9
	ruddG5                 = 0.33
)

// ruddS is the cross-section scale 4 pi a0^2 (R/I)^2 in m^2.
func ruddS() float64 {
	a0 := constants.BohrRadius
	ratio := constants.RydbergEV / constants.IonizationEnergyH
	return 4 * math.Pi * a0 * a0 * ratio * ratio
}

func ruddF(t float64) float64 {
	return (ruddA1*math.Log(t) + ruddA2 + ruddA3/t) / t
}

func ruddG1of(t float64) float64 {
	return (1-math.Pow(t, 1-ruddN))/(ruddN-1) -
		math.Pow(2/(t+1), ruddN/2)*(1-math.Pow(t, 1-ruddN/2))/(ruddN-2)
}

// TotalXSec returns the total ionisation cross-section S*F(t)*g1(t) in m^2.
func (r *Rudd) TotalXSec(T float64) float64 {
	if T <= constants.IonizationEnergyH {
		return 0
	}
	t := T / constants.IonizationEnergyH
	return ruddS() * ruddF(t) * ruddG1of(t)
}

// wMax is the upper bound of the secondary energy domain: the two outgoing
// electrons are indistinguishable, so the slower one carries at most half
// the available energy.
func (r *Rudd) wMax(T float64) float64 {
	return (T - constants.IonizationEnergyH) / 2
}

func ruddF1(t, w float64) float64 {
	return 1/math.Pow(w+1, ruddN) + 1/math.Pow(t-w, ruddN) -
		1/math.Pow((w+1)*(t-w), ruddN/2)
}

// SDCS is the singly differential ionisation cross-section in the secondary
// energy W, in m^2/eV. In the model the angular weight gBE + 2.9*G4 cancels
// between G1 and the angular integral, leaving S*F(t)*f1(t,w)/I.
func (r *Rudd) SDCS(T, W float64) float64 {
	if T <= constants.IonizationEnergyH || W < 0 || W > r.wMax(T) {
		return 0
	}
	t := T / constants.IonizationEnergyH
	w := W / constants.IonizationEnergyH
	return ruddS() * ruddF(t) * ruddF1(t, w) / constants.IonizationEnergyH
}

func ruddG2(t, w float64) float64 { return math.Sqrt((w + 1) / t) }

func ruddG3(t, w float64) float64 {
	g2 := ruddG2(t, w)
	return ruddBeta * math.Sqrt((1-g2*g2)/w)
}

func ruddG4(t, w float64) float64 {
	d := 1 - w/t
	return ruddGamma * d * d * d / (t * (w + 1))
}

func ruddGBE(t, w float64) float64 {
	g2 := ruddG2(t, w)
	g3 := ruddG3(t, w)
	return 2 * math.Pi * g3 * (math.Atan((1-g2)/g3) + math.Atan((1+g2)/g3))
}

// DDCS is the doubly differential ionisation cross-section in secondary
// energy W and scattering angle theta, in m^2/eV per unit cos(theta).
// W must be strictly positive; the binary-encounter peak width g3 is
// singular at W = 0.
func (r *Rudd) DDCS(T, W, theta float64) float64 {
	if T <= constants.IonizationEnergyH || W <= 0 || W > r.wMax(T) {
		return 0
	}
	t := T / constants.IonizationEnergyH
	w := W / constants.IonizationEnergyH

	g1 := ruddS() * ruddF(t) * ruddF1(t, w) / constants.IonizationEnergyH /
		(ruddGBE(t, w) + ruddG4(t, w)*ruddGs)

	cosTheta := math.Cos(theta)
	g2 := ruddG2(t, w)
	g3 := ruddG3(t, w)
	dev := (cosTheta - g2) / g3
	fBE := 1 / (1 + dev*dev)

	back := (cosTheta + 1) / ruddG5
	g4fb := ruddG4(t, w) / (1 + back*back)

	return g1 * (fBE + g4fb)
}

// MeanSecondaryEnergy returns the SDCS-weighted mean ejected electron energy
// in eV, evaluated by Gauss-Legendre quadrature over the secondary domain.
func (r *Rudd) MeanSecondaryEnergy(T float64) float64 {
	if T <= constants.IonizationEnergyH {
		return 0
	}
	hi := r.wMax(T)
	num := numeric.GaussLegendre(func(w float64) float64 { return w * r.SDCS(T, w) }, 0, hi, 128)
	den := numeric.GaussLegendre(func(w float64) float64 { return r.SDCS(T, w) }, 0, hi, 128)
	if den == 0 {
		return 0
	}
	return num / den
}
