package numeric

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	g := Linspace(0, 10, 11)
	if len(g) != 11 {
		t.Fatalf("expected 11 points, got %d", len(g))
	}
	if g[0] != 0 || g[10] != 10 {
		t.Errorf("endpoints wrong: %f, %f", g[0], g[10])
	}
	if math.Abs(g[5]-5.0) > 1e-12 {
		t.Errorf("midpoint: got %f", g[5])
	}

	if Linspace(1, 2, 0) != nil {
		t.Error("expected nil for n=0")
	}
	single := Linspace(3, 7, 1)
	if len(single) != 1 || single[0] != 3 {
		t.Errorf("n=1: got %v", single)
	}
}

func TestLogspace(t *testing.T) {
	g := Logspace(10, 1000, 3)
	want := []float64{10, 100, 1000}
	for i := range want {
		if math.Abs(g[i]-want[i])/want[i] > 1e-12 {
			t.Errorf("point %d: got %g, want %g", i, g[i], want[i])
		}
	}
}

func TestGaussLegendrePolynomial(t *testing.T) {
	// An n-point rule is exact for polynomials up to degree 2n-1.
	got := GaussLegendre(func(x float64) float64 { return x*x*x - 2*x*x + 4 }, -1, 3, 4)
	// exact: [x^4/4 - 2x^3/3 + 4x] from -1 to 3
	want := (81.0/4 - 54.0/3 + 12) - (1.0/4 + 2.0/3 - 4)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %.15f, want %.15f", got, want)
	}
}

func TestGaussLegendreConvergence(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(-x) * math.Sin(3*x) }
	a64 := GaussLegendre(f, 0, 5, 64)
	a128 := GaussLegendre(f, 0, 5, 128)
	if math.Abs(a64-a128) > 1e-12 {
		t.Errorf("rules disagree: %.15e vs %.15e", a64, a128)
	}
}

func TestInterp(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{10, 20, 40, 80}

	tests := []struct {
		x, want float64
	}{
		{2, 20},    // node
		{3, 30},    // midpoint
		{0.5, 10},  // clamp low
		{9, 80},    // clamp high
		{6, 60},    // interior
	}
	for _, tt := range tests {
		got := Interp(tt.x, xs, ys)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Interp(%g): got %g, want %g", tt.x, got, tt.want)
		}
	}

	if Interp(1, nil, nil) != 0 {
		t.Error("empty table should return 0")
	}
}
