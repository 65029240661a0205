package xsec

import (
	"testing"

	"github.com/tritium-lab/escatter/internal/numeric"
)

func TestStoneTableNodes(t *testing.T) {
	s2p := NewStone2p()
	if got, want := s2p.TotalXSec(11), 0.15876e-20; relDiff(got, want) > 1e-12 {
		t.Errorf("2p at first node: got %.6e, want %.6e", got, want)
	}
	if got, want := s2p.TotalXSec(40), 0.65315e-20; relDiff(got, want) > 1e-12 {
		t.Errorf("2p at 40 eV: got %.6e, want %.6e", got, want)
	}

	s3p := NewStone3p()
	if got, want := s3p.TotalXSec(3000), 0.00862e-20; relDiff(got, want) > 1e-12 {
		t.Errorf("3p at last node: got %.6e, want %.6e", got, want)
	}
}

func TestStoneInterpolation(t *testing.T) {
	s2p := NewStone2p()
	want := (0.15876 + 0.24099) / 2 * 1e-20
	if got := s2p.TotalXSec(11.5); relDiff(got, want) > 1e-12 {
		t.Errorf("2p midpoint 11.5 eV: got %.6e, want %.6e", got, want)
	}

	s3p := NewStone3p()
	want = (0.01198 + 0.00862) / 2 * 1e-20
	if got := s3p.TotalXSec(2500); relDiff(got, want) > 1e-12 {
		t.Errorf("3p midpoint 2500 eV: got %.6e, want %.6e", got, want)
	}
}

func TestStoneThresholds(t *testing.T) {
	s2p := NewStone2p()
	if s2p.TotalXSec(10.0) != 0 {
		t.Error("2p below threshold should be 0")
	}
	// Between threshold and the first table node the first value is held.
	if got, want := s2p.TotalXSec(10.5), 0.15876e-20; relDiff(got, want) > 1e-12 {
		t.Errorf("2p just above threshold: got %.6e, want %.6e", got, want)
	}

	s3p := NewStone3p()
	if s3p.TotalXSec(12.0) != 0 {
		t.Error("3p below threshold should be 0")
	}
	if s3p.TotalXSec(12.094) <= 0 {
		t.Error("3p at threshold should hold the first table value")
	}
}

func TestStoneEndpointClamp(t *testing.T) {
	s2p := NewStone2p()
	if got, want := s2p.TotalXSec(1e4), 0.05214e-20; relDiff(got, want) > 1e-12 {
		t.Errorf("2p above table: got %.6e, want %.6e", got, want)
	}
}

func TestStoneNonNegativeAndSingleRise(t *testing.T) {
	for _, s := range []*Stone{NewStone2p(), NewStone3p()} {
		for _, T := range numeric.Linspace(5, 3000, 300) {
			if s.TotalXSec(T) < 0 {
				t.Fatalf("%s: negative at %g eV", s.Name(), T)
			}
		}
		// 2p should dominate 3p everywhere above both thresholds.
	}
	s2p, s3p := NewStone2p(), NewStone3p()
	for _, T := range numeric.Linspace(13, 3000, 100) {
		if s3p.TotalXSec(T) >= s2p.TotalXSec(T) {
			t.Errorf("3p >= 2p at %g eV", T)
		}
	}
}
