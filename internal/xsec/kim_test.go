package xsec

import (
	"testing"

	"github.com/tritium-lab/escatter/internal/constants"
	"github.com/tritium-lab/escatter/internal/numeric"
)

func TestKimUnknownSpecies(t *testing.T) {
	if _, err := NewKim("Ar"); err == nil {
		t.Fatal("expected error for unsupported species")
	}
}

func TestKimTotalReference(t *testing.T) {
	tests := []struct {
		species Species
		energy  float64
		want    float64
	}{
		{SpeciesH, 100, 5.778041314107e-21},
		{SpeciesHe, 100, 3.570239200171e-21},
		{SpeciesH2, 100, 9.277073614078e-21},
		{SpeciesH, constants.TritiumEndpointEV, 9.271419015658e-23},
	}
	for _, tt := range tests {
		k, err := NewKim(tt.species)
		if err != nil {
			t.Fatal(err)
		}
		got := k.TotalXSec(tt.energy)
		if relDiff(got, tt.want) > 1e-10 {
			t.Errorf("%s total(%g): got %.12e, want %.12e", tt.species, tt.energy, got, tt.want)
		}
	}
}

func TestKimSDCSReference(t *testing.T) {
	tests := []struct {
		species Species
		want    float64
	}{
		{SpeciesH, 3.302019995376e-22},
		{SpeciesHe, 1.813468507618e-22},
		{SpeciesH2, 5.463695304632e-22},
	}
	for _, tt := range tests {
		k, err := NewKim(tt.species)
		if err != nil {
			t.Fatal(err)
		}
		got := k.SDCS(100, 5)
		if relDiff(got, tt.want) > 1e-10 {
			t.Errorf("%s SDCS(100, 5): got %.12e, want %.12e", tt.species, got, tt.want)
		}
	}
}

func TestKimThreshold(t *testing.T) {
	for _, sp := range []Species{SpeciesH, SpeciesHe, SpeciesH2} {
		k, err := NewKim(sp)
		if err != nil {
			t.Fatal(err)
		}
		if k.TotalXSec(k.Threshold()) != 0 {
			t.Errorf("%s: total at threshold should be 0", sp)
		}
		if k.TotalXSec(k.Threshold()+1) <= 0 {
			t.Errorf("%s: total just above threshold should be positive", sp)
		}
	}
}

func TestKimAgreesWithRuddAtModerateEnergy(t *testing.T) {
	// Two independent ionisation models for H should agree to a few
	// percent in the 100 eV regime.
	k, err := NewKim(SpeciesH)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRudd()
	if d := relDiff(k.TotalXSec(100), r.TotalXSec(100)); d > 0.05 {
		t.Errorf("models diverge by %.1f%% at 100 eV", d*100)
	}
}

func TestKimNonNegative(t *testing.T) {
	for _, sp := range []Species{SpeciesH, SpeciesHe, SpeciesH2} {
		k, err := NewKim(sp)
		if err != nil {
			t.Fatal(err)
		}
		for _, T := range numeric.Logspace(30, 2e4, 25) {
			if k.TotalXSec(T) < 0 {
				t.Fatalf("%s: negative total at %g", sp, T)
			}
			for _, W := range numeric.Linspace(0, (T-k.Threshold())/2, 20) {
				if k.SDCS(T, W) < 0 {
					t.Fatalf("%s: negative SDCS at T=%g W=%g", sp, T, W)
				}
			}
		}
	}
}
