package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tritium-lab/escatter/internal/constants"
	"github.com/tritium-lab/escatter/internal/scan"
)

const (
	DefaultEMin       = 10.0
	DefaultEMax       = constants.TritiumEndpointEV
	DefaultPoints     = 200
	DefaultCutoffMrad = 10.0
	DefaultField      = 1.0
)

// Config describes a scan: which model, over which energy grid, and the
// model/transport parameters that are not part of the grid.
type Config struct {
	Model      string  `yaml:"model"`
	EMin       float64 `yaml:"emin"`
	EMax       float64 `yaml:"emax"`
	Points     int     `yaml:"points"`
	Log        bool    `yaml:"log"`
	CutoffMrad float64 `yaml:"cutoff_mrad"` // Mott screening cutoff [mrad]
	Field      float64 `yaml:"field"`       // magnetic field [T]
	DataDir    string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "rudd",
		EMin:       DefaultEMin,
		EMax:       DefaultEMax,
		Points:     DefaultPoints,
		Log:        true,
		CutoffMrad: DefaultCutoffMrad,
		Field:      DefaultField,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid converts the energy bounds into a scan grid.
func (c *Config) Grid() scan.Grid {
	return scan.Grid{Min: c.EMin, Max: c.EMax, Points: c.Points, Log: c.Log}
}

// CutoffRad returns the Mott screening cutoff in radians.
func (c *Config) CutoffRad() float64 {
	return c.CutoffMrad / 1000
}
