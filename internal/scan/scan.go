// Package scan evaluates cross-section curves over energy grids and derives
// summary metrics from the resulting series.
package scan

import (
	"context"
	"errors"
	"sync"

	"github.com/tritium-lab/escatter/internal/analysis"
	"github.com/tritium-lab/escatter/internal/numeric"
	"github.com/tritium-lab/escatter/internal/xsec"
)

var (
	ErrEmptyGrid    = errors.New("scan: energy grid needs at least two points")
	ErrInvalidGrid  = errors.New("scan: grid bounds must be positive and increasing")
	ErrUnknownModel = errors.New("scan: unknown model")
)

// Grid describes an energy grid in eV.
type Grid struct {
	Min, Max float64
	Points   int
	Log      bool
}

func (g Grid) Validate() error {
	if g.Points < 2 {
		return ErrEmptyGrid
	}
	if g.Min <= 0 || g.Max <= g.Min {
		return ErrInvalidGrid
	}
	return nil
}

// Energies materializes the grid.
func (g Grid) Energies() []float64 {
	if g.Log {
		return numeric.Logspace(g.Min, g.Max, g.Points)
	}
	return numeric.Linspace(g.Min, g.Max, g.Points)
}

// Series is a sampled cross-section curve.
type Series struct {
	Label    string
	Energies []float64 // [eV]
	Values   []float64 // [m^2]
}

// Result is a completed scan with its derived metrics.
type Result struct {
	Series  Series
	Metrics map[string]float64
}

// Run evaluates curve over grid. Cancellation is checked once per grid
// point; a canceled context returns the context error and no result.
func Run(ctx context.Context, curve xsec.Curve, grid Grid) (*Result, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	energies := grid.Energies()
	values := make([]float64, len(energies))
	for i, T := range energies {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		values[i] = curve.TotalXSec(T)
	}

	series := Series{Label: curve.Name(), Energies: energies, Values: values}

	peakE, peakV := analysis.Peak(energies, values)
	metrics := map[string]float64{
		"peak_energy_ev": peakE,
		"peak_xsec_m2":   peakV,
		"threshold_ev":   curve.Threshold(),
	}
	if onset, ok := analysis.Onset(energies, values); ok {
		metrics["onset_ev"] = onset
	}

	return &Result{Series: series, Metrics: metrics}, nil
}

// RunAll evaluates several curves over the same grid concurrently. Results
// are returned in input order; the first error wins.
func RunAll(ctx context.Context, curves []xsec.Curve, grid Grid) ([]*Result, error) {
	results := make([]*Result, len(curves))
	errs := make([]error, len(curves))

	var wg sync.WaitGroup
	for i, c := range curves {
		wg.Add(1)
		go func(idx int, curve xsec.Curve) {
			defer wg.Done()
			results[idx], errs[idx] = Run(ctx, curve, grid)
		}(i, c)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
