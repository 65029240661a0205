package config

import "sort"

var presets = map[string]map[string]*Config{
	"mott": {
		"endpoint": {
			Model: "mott", EMin: 100, EMax: 18575, Points: 300, Log: true,
			CutoffMrad: 10, Field: 1.0,
		},
		"wide-angle": {
			Model: "mott", EMin: 100, EMax: 18575, Points: 300, Log: true,
			CutoffMrad: 500, Field: 1.0,
		},
	},
	"rudd": {
		"threshold": {
			Model: "rudd", EMin: 14, EMax: 300, Points: 300, Log: false,
			CutoffMrad: 10, Field: 1.0,
		},
		"full": {
			Model: "rudd", EMin: 14, EMax: 18575, Points: 400, Log: true,
			CutoffMrad: 10, Field: 1.0,
		},
	},
	"kim-h": {
		"full": {
			Model: "kim-h", EMin: 14, EMax: 18575, Points: 400, Log: true,
			CutoffMrad: 10, Field: 1.0,
		},
	},
	"stone-2p": {
		"table": {
			Model: "stone-2p", EMin: 11, EMax: 3000, Points: 300, Log: true,
			CutoffMrad: 10, Field: 1.0,
		},
	},
	"stone-3p": {
		"table": {
			Model: "stone-3p", EMin: 13, EMax: 3000, Points: 300, Log: true,
			CutoffMrad: 10, Field: 1.0,
		},
	},
}

// GetPreset returns the named preset for a model, or nil.
func GetPreset(model, name string) *Config {
	group, ok := presets[model]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

// ListPresets returns the preset names for a model, sorted, or nil.
func ListPresets(model string) []string {
	group, ok := presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
