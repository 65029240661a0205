package kinematics

import (
	"math"

	"github.com/tritium-lab/escatter/internal/constants"
)

// Activity returns the decay rate in Bq of a tritium population of nAtoms.
func Activity(nAtoms float64) float64 {
	return constants.TritiumDecayConst * nAtoms
}

// SurvivingFraction returns the fraction of a tritium population remaining
// after t seconds.
func SurvivingFraction(t float64) float64 {
	return math.Exp(-constants.TritiumDecayConst * t)
}
