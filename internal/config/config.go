package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/geomath/internal/core/observability/log"
)

var (
	ErrInvalidWorkers   = errors.New("runner workers must not be negative")
	ErrInvalidTolerance = errors.New("runner tolerance must be a non-negative number")
	ErrInvalidLevel     = errors.New("invalid log level")
)

const DefaultTolerance = 1e-9

// Config is the configuration of the geomcalc runner.
type Config struct {
	Log    log.Config   `yaml:"log"`
	Runner RunnerConfig `yaml:"runner"`
}

type RunnerConfig struct {
	// Workers bounds the number of scenario files evaluated at once.
	// Zero means one per CPU.
	Workers int `yaml:"workers"`
	// Tolerance is the default absolute tolerance for expectations.
	Tolerance float64 `yaml:"tolerance"`
	// FailFast stops a scenario at its first failed expectation.
	FailFast bool `yaml:"fail_fast"`
}

func Default() *Config {
	return &Config{
		Log: log.Config{
			Level:    "info",
			Encoding: "console",
		},
		Runner: RunnerConfig{
			Workers:   runtime.NumCPU(),
			Tolerance: DefaultTolerance,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes r on top of the defaults and validates the result.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Runner.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Runner.Workers)
	}
	if c.Runner.Tolerance < 0 || math.IsNaN(c.Runner.Tolerance) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, c.Runner.Tolerance)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return nil
}
