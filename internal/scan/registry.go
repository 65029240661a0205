package scan

import (
	"fmt"
	"sort"

	"github.com/tritium-lab/escatter/internal/xsec"
)

// Registry maps model names to cross-section curve factories.
type Registry struct {
	curves map[string]func() (xsec.Curve, error)
}

func NewRegistry() *Registry {
	r := &Registry{curves: make(map[string]func() (xsec.Curve, error))}

	r.curves["mott"] = func() (xsec.Curve, error) { return xsec.NewMott(), nil }
	r.curves["rudd"] = func() (xsec.Curve, error) { return xsec.NewRudd(), nil }
	r.curves["stone-2p"] = func() (xsec.Curve, error) { return xsec.NewStone2p(), nil }
	r.curves["stone-3p"] = func() (xsec.Curve, error) { return xsec.NewStone3p(), nil }
	for name, sp := range map[string]xsec.Species{
		"kim-h":  xsec.SpeciesH,
		"kim-he": xsec.SpeciesHe,
		"kim-h2": xsec.SpeciesH2,
	} {
		species := sp
		r.curves[name] = func() (xsec.Curve, error) { return xsec.NewKim(species) }
	}

	return r
}

// Get builds the named curve.
func (r *Registry) Get(name string) (xsec.Curve, error) {
	fn, ok := r.curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return fn()
}

// List returns the registered model names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
