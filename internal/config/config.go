// SPDX-License-Identifier: MIT

// Package config loads lvgroup CLI settings with Viper.
//
// Precedence (lowest to highest): built-in defaults, lvgroup.toml found by
// walking up from the working directory, LVGROUP_* environment variables,
// command-line flags (applied by the caller).
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvgroup/cubic"
	"github.com/katalvlaran/lvgroup/dihedral"
	"github.com/spf13/viper"
)

// FileName is the project config file searched for by Load.
const FileName = "lvgroup.toml"

// ErrInvalid marks a configuration value the engine cannot accept.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	Solver   SolverConfig   `mapstructure:"solver"`
	Dihedral DihedralConfig `mapstructure:"dihedral"`
	Output   OutputConfig   `mapstructure:"output"`
}

// SolverConfig tunes the Durand–Kerner iteration.
type SolverConfig struct {
	Iterations int     `mapstructure:"iterations"` // default 20
	Tolerance  float64 `mapstructure:"tolerance"`  // 0 = fixed iteration count
	Update     string  `mapstructure:"update"`     // sequential | simultaneous
}

// DihedralConfig sets the default polygon.
type DihedralConfig struct {
	N      int     `mapstructure:"n"`
	Radius float64 `mapstructure:"radius"`
}

// OutputConfig selects the renderer.
type OutputConfig struct {
	Format string `mapstructure:"format"` // table | json | yaml
}

// SetDefaults registers every key with its default.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solver.iterations", cubic.DefaultIterations)
	v.SetDefault("solver.tolerance", 0.0)
	v.SetDefault("solver.update", cubic.Sequential.String())

	v.SetDefault("dihedral.n", 4)
	v.SetDefault("dihedral.radius", 80.0)

	v.SetDefault("output.format", "table")
}

// Load reads defaults, the nearest lvgroup.toml (if any) and LVGROUP_* env vars.
func Load() (*Config, error) {
	v := newViper()
	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads defaults, the given TOML file and LVGROUP_* env vars.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("LVGROUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findProjectConfig walks up from the working directory looking for FileName.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate checks every value against what the engine accepts, so that
// SolverOptions never hits an option-constructor panic.
func (c *Config) Validate() error {
	if c.Solver.Iterations < 1 {
		return errors.Wrapf(ErrInvalid, "solver.iterations=%d must be >= 1", c.Solver.Iterations)
	}
	if tol := c.Solver.Tolerance; math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return errors.Wrapf(ErrInvalid, "solver.tolerance=%v must be finite and >= 0", tol)
	}
	if _, ok := cubic.ParseUpdateMode(c.Solver.Update); !ok {
		return errors.Wrapf(ErrInvalid, "solver.update=%q must be sequential or simultaneous", c.Solver.Update)
	}
	if c.Dihedral.N < dihedral.MinVertices {
		return errors.Wrapf(ErrInvalid, "dihedral.n=%d must be >= %d", c.Dihedral.N, dihedral.MinVertices)
	}
	if r := c.Dihedral.Radius; math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return errors.Wrapf(ErrInvalid, "dihedral.radius=%v must be > 0", c.Dihedral.Radius)
	}

	return nil
}

// SolverOptions translates the solver section into cubic options.
// Call Validate first.
func (c *Config) SolverOptions() []cubic.Option {
	mode, _ := cubic.ParseUpdateMode(c.Solver.Update)

	return []cubic.Option{
		cubic.WithIterations(c.Solver.Iterations),
		cubic.WithTolerance(c.Solver.Tolerance),
		cubic.WithUpdate(mode),
	}
}
