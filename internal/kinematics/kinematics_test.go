package kinematics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tritium-lab/escatter/internal/constants"
	"github.com/tritium-lab/escatter/internal/kinematics"
)

var _ = Describe("Kinematics", func() {
	endpoint := constants.TritiumEndpointEV

	Describe("relativistic factors", func() {
		It("matches the endpoint reference values", func() {
			Expect(kinematics.Gamma(endpoint)).To(BeNumerically("~", 1.036350368235, 1e-10))
			Expect(kinematics.Beta(endpoint)).To(BeNumerically("~", 0.262527046725, 1e-10))
			Expect(kinematics.Momentum(endpoint)).To(BeNumerically("~", 7.430026412965e-23, 1e-32))
		})

		It("reduces to the classical limit at low energy", func() {
			classical := math.Sqrt(2 * constants.EV2J(1.0) / constants.ElectronMass)
			Expect(kinematics.Speed(1.0)).To(BeNumerically("~", classical, classical*1e-5))
		})

		It("never reaches the speed of light", func() {
			Expect(kinematics.Beta(1e9)).To(BeNumerically("<", 1.0))
			Expect(kinematics.Beta(0)).To(BeZero())
		})
	})

	Describe("pitch-angle decomposition", func() {
		It("conserves the total speed", func() {
			for _, pitch := range []float64{0, 0.3, math.Pi / 4, 87 * math.Pi / 180} {
				vPar, vPerp := kinematics.VelocityComponents(endpoint, pitch)
				v := kinematics.Speed(endpoint)
				Expect(math.Hypot(vPar, vPerp)).To(BeNumerically("~", v, v*1e-12))
			}
		})

		It("is purely parallel at zero pitch", func() {
			vPar, vPerp := kinematics.VelocityComponents(endpoint, 0)
			Expect(vPerp).To(BeZero())
			Expect(vPar).To(BeNumerically("~", kinematics.Speed(endpoint), 1e-3))
		})
	})

	Describe("cyclotron motion", func() {
		It("matches the endpoint reference in a 1 T field", func() {
			f := kinematics.CyclotronFrequency(endpoint, 1.0)
			Expect(f).To(BeNumerically("~", 2.7010643051e10, 1.0))

			r := kinematics.CyclotronRadius(endpoint, 1.0, 87*math.Pi/180)
			Expect(r).To(BeNumerically("~", 4.6311022534e-4, 1e-12))
		})

		It("scales inversely with field strength", func() {
			f1 := kinematics.CyclotronFrequency(endpoint, 1.0)
			f2 := kinematics.CyclotronFrequency(endpoint, 2.0)
			Expect(f2 / f1).To(BeNumerically("~", 2.0, 1e-12))
		})
	})

	Describe("tritium decay", func() {
		It("halves the population after one half-life", func() {
			halfLife := constants.TritiumHalfLife * constants.SecondsPerYear
			Expect(kinematics.SurvivingFraction(halfLife)).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("uses the tabulated decay constant", func() {
			Expect(kinematics.Activity(1.0)).To(BeNumerically("~", 1.7828335005e-9, 1e-18))
		})
	})
})
