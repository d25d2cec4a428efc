// Package config implements the run-configuration layer (spec.md D1):
// a YAML document describing one trajectory run, loaded and saved the
// way the teacher's internal/config round-trips its own documents.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod = "rk4_classical"
	DefaultDt     = 0.01
	DefaultSteps  = 1000
)

// EverhartConfig mirrors internal/everhart.Config's YAML surface; kept
// as a distinct type here so the run document stays decoupled from the
// integrator package's Go type.
type EverhartConfig struct {
	Order             int     `yaml:"order"`
	LocalError        float64 `yaml:"local_error"`
	MaxIterations     int     `yaml:"max_iterations"`
	VerifyConvergence bool    `yaml:"verify_convergence"`
}

// Config is one run document (spec.md D1).
type Config struct {
	Method               string         `yaml:"method"`
	Problem              string         `yaml:"problem"`
	Dt                   float64        `yaml:"dt"`
	Steps                int            `yaml:"steps"`
	InterpolationPoints  int            `yaml:"interpolation_points"`
	Seed                 int64          `yaml:"seed"`
	Everhart             EverhartConfig `yaml:"everhart"`
}

// DefaultConfig returns the zero-risk default run: classical RK4,
// dt=0.01, 1000 steps, no interior interpolation.
func DefaultConfig() *Config {
	return &Config{
		Method:  DefaultMethod,
		Problem: "sin",
		Dt:      DefaultDt,
		Steps:   DefaultSteps,
		Everhart: EverhartConfig{
			Order:             15,
			LocalError:        1e-11,
			MaxIterations:     100,
			VerifyConvergence: true,
		},
	}
}

// Load reads a run document from path, applying DefaultConfig's values
// for any field the document omits.
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

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
