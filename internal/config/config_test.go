package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathgeom.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
tolerance = 0.1
step = 4.5
corner_radius = 2
seed = 1234
precision = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Tolerance:    0.1,
		Step:         4.5,
		CornerRadius: 2,
		Seed:         1234,
		Precision:    3,
	}, cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "step = 4.5\nseed = 1\n")
	t.Setenv("PATHGEOM_SEED", "77")
	t.Setenv("PATHGEOM_PRECISION", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.Step)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, Default().Tolerance, cfg.Tolerance)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "tolerence = 1\n"))
	var strict *toml.StrictMissingError
	assert.ErrorAs(t, err, &strict)

	_, err = Load(writeConfig(t, "step = -1\n"))
	assert.ErrorContains(t, err, "step must be positive")

	t.Setenv("PATHGEOM_STEP", "fast")
	_, err = Load("")
	assert.ErrorContains(t, err, "reading environment")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Step = 0
	cfg.Precision = -1
	cfg.CornerRadius = -3
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "step")
	assert.ErrorContains(t, err, "precision")
	assert.ErrorContains(t, err, "corner radius")
}
