package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvgroup/cubic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, cubic.DefaultIterations, cfg.Solver.Iterations)
	assert.Equal(t, 0.0, cfg.Solver.Tolerance)
	assert.Equal(t, "sequential", cfg.Solver.Update)
	assert.Equal(t, 4, cfg.Dihedral.N)
	assert.Equal(t, 80.0, cfg.Dihedral.Radius)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadFromFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
[solver]
iterations = 50
tolerance = 1e-12
update = "simultaneous"

[dihedral]
n = 6

[output]
format = "json"
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Solver.Iterations)
	assert.Equal(t, 1e-12, cfg.Solver.Tolerance)
	assert.Equal(t, "simultaneous", cfg.Solver.Update)
	assert.Equal(t, 6, cfg.Dihedral.N)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Len(t, cfg.SolverOptions(), 3)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("LVGROUP_DIHEDRAL_N", "8")
	cfg, err := LoadFromFile(writeConfig(t, "[dihedral]\nn = 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Dihedral.N)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"iterations": "[solver]\niterations = 0\n",
		"tolerance":  "[solver]\ntolerance = -1.0\n",
		"tol_nan":    "[solver]\ntolerance = nan\n",
		"tol_inf":    "[solver]\ntolerance = inf\n",
		"update":     "[solver]\nupdate = \"jacobi\"\n",
		"n":          "[dihedral]\nn = 2\n",
		"radius":     "[dihedral]\nradius = 0.0\n",
		"radius_nan": "[dihedral]\nradius = nan\n",
	}
	for name, body := range tests {
		_, err := LoadFromFile(writeConfig(t, body))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestLoad_EnvNaNTolerance(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LVGROUP_SOLVER_TOLERANCE", "NaN")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Nil(t, cfg)
}

func TestValidate_NonFiniteTolerance(t *testing.T) {
	for _, tol := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1e-9} {
		cfg := Config{
			Solver:   SolverConfig{Iterations: 20, Tolerance: tol, Update: "sequential"},
			Dihedral: DihedralConfig{N: 4, Radius: 1},
		}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalid, "tolerance=%v", tol)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestSolverOptions_MatchDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, ""))
	require.NoError(t, err)

	got, err := cubic.Solve(cubic.Coefficients{A: -6, B: 11, C: -6}, cfg.SolverOptions()...)
	require.NoError(t, err)
	assert.Equal(t, cubic.SolveCubic(-6, 11, -6), got)
}
