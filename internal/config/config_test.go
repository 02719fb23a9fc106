package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/contactnet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.DatasetVillage, cfg.Dataset)
	assert.Equal(t, 10, cfg.Top)
	assert.Equal(t, 20, cfg.Bins)
	assert.Equal(t, "first", cfg.Aggregation.Policy)
	assert.Equal(t, 0.85, cfg.Metrics.Damping)
	assert.Equal(t, ',', cfg.CommaRune())
	assert.Equal(t, "centralities_village.csv", cfg.OutputPath())

	// Default has no inputs, so it only validates once some are given.
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
	cfg.Inputs = []string{"within.csv"}
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := write(t, "contactnet.toml", `
dataset = "school"
inputs = ["school.gexf"]
top = 5

[loader]
weight_attribute = "duration"

[metrics]
damping = 0.9
sequential = true

[logging]
level = "debug"
format = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DatasetSchool, cfg.Dataset)
	assert.Equal(t, []string{"school.gexf"}, cfg.Inputs)
	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, 20, cfg.Bins, "unset keys keep defaults")
	assert.Equal(t, "duration", cfg.Loader.WeightAttribute)
	assert.Equal(t, 0.9, cfg.Metrics.Damping)
	assert.True(t, cfg.Metrics.Sequential)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "centralities_school.csv", cfg.OutputPath())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "bad.toml", "top = [unterminated"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CONTACTNET_DATASET", "village")
	t.Setenv("CONTACTNET_INPUTS", "a.csv, b.csv,")
	t.Setenv("CONTACTNET_TOP", "3")
	t.Setenv("CONTACTNET_POLICY", "last")
	t.Setenv("CONTACTNET_DAMPING", "0.5")
	t.Setenv("CONTACTNET_LOG_LEVEL", "warn")

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Inputs)
	assert.Equal(t, 3, cfg.Top)
	assert.Equal(t, "last", cfg.Aggregation.Policy)
	assert.Equal(t, 0.5, cfg.Metrics.Damping)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())

	t.Setenv("CONTACTNET_BINS", "many")
	assert.ErrorIs(t, config.Default().ApplyEnv(), config.ErrInvalid)
}

func TestLoadEnvFiles(t *testing.T) {
	// Register cleanup for the variable the file sets.
	t.Setenv("CONTACTNET_OUTPUT", "")
	require.NoError(t, os.Unsetenv("CONTACTNET_OUTPUT"))

	path := write(t, ".env", "CONTACTNET_OUTPUT=out.csv\n")
	require.NoError(t, config.LoadEnvFiles(path, filepath.Join(t.TempDir(), "missing.env")))

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "out.csv", cfg.OutputPath())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"dataset":        func(c *config.Config) { c.Dataset = "city" },
		"school inputs":  func(c *config.Config) { c.Dataset = config.DatasetSchool; c.Inputs = []string{"a", "b"} },
		"top":            func(c *config.Config) { c.Top = 0 },
		"bins":           func(c *config.Config) { c.Bins = -1 },
		"comma":          func(c *config.Config) { c.Loader.Comma = ";;" },
		"policy":         func(c *config.Config) { c.Aggregation.Policy = "newest" },
		"damping":        func(c *config.Config) { c.Metrics.Damping = 1.5 },
		"tolerance":      func(c *config.Config) { c.Metrics.Tolerance = 0 },
		"max iterations": func(c *config.Config) { c.Metrics.MaxIterations = 0 },
		"log level":      func(c *config.Config) { c.Logging.Level = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Inputs = []string{"in.csv"}
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
