// Package constants holds the physical constants shared by the cross-section
// and kinematics packages. Values are CODATA 2018.
package constants

import "math"

const (
	ElectronCharge float64 = 1.602176634e-19  // [C]
	ElectronMass   float64 = 9.1093837015e-31 // [kg]
	SpeedOfLight   float64 = 299792458.0      // [m s^-1]
	HBar           float64 = 1.054571817e-34  // [J s]
	FineStructure  float64 = 7.2973525693e-3
	BohrRadius     float64 = 5.29177210903e-11 // [m]
	AtomicMassUnit float64 = 1.66053906660e-27 // [kg]
	KBoltzmann     float64 = 1.380649e-23      // [J K^-1]
)

// Electron rest energy in eV.
const ElectronRestEnergyEV = ElectronMass * SpeedOfLight * SpeedOfLight / ElectronCharge

const (
	RydbergEV          float64 = 13.605693122994 // [eV]
	IonizationEnergyH  float64 = 13.59844        // hydrogen 1s binding energy [eV]
	ExcitationEnergy2p float64 = 10.204          // H 1s -> 2p threshold [eV]
	ExcitationEnergy3p float64 = 12.094          // H 1s -> 3p threshold [eV]
)

const (
	TritiumMassU       float64 = 3.01604928 // tritium nuclear mass [u]
	TritiumHalfLife    float64 = 12.32      // [years]
	TritiumEndpointEV  float64 = 18575.0    // beta spectrum endpoint [eV]
	SecondsPerYear     float64 = 60.0 * 60.0 * 24.0 * 365.25
)

// TritiumDecayConst is the tritium decay constant ln(2)/t_half in s^-1.
var TritiumDecayConst = math.Ln2 / (TritiumHalfLife * SecondsPerYear)

// EV2J converts an energy from eV to joules.
func EV2J(ev float64) float64 { return ev * ElectronCharge }

// J2EV converts an energy from joules to eV.
func J2EV(j float64) float64 { return j / ElectronCharge }
