package coincidence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfigFile(t, `{}`)
	config, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "Singles5", config.InputTable)
	assert.Equal(t, ModeFullRing, config.Mode)
	assert.Equal(t, 4.5, config.TimeWindowNs)
	assert.Equal(t, 100.0, config.MinAngleDeg)
	assert.False(t, config.Rotating)
	assert.Equal(t, 90.0, config.RotationSpeed)
	assert.Equal(t, 18, config.NModules)
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfigFile(t, `{
		"file_in": "singles.h5",
		"file_out": "coincidences.h5",
		"mode": "partial-ring",
		"time_window_ns": 6.0,
		"min_angle_deg": 90.0,
		"rotating": true,
		"rotation_speed_deg_per_sec": 180.0,
		"n_modules": 12,
		"no_db": true
	}`)
	config, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, "singles.h5", config.FileIn)
	assert.Equal(t, ModePartialRing, config.Mode)
	assert.Equal(t, 6.0, config.TimeWindowNs)
	assert.Equal(t, 90.0, config.MinAngleDeg)
	assert.True(t, config.Rotating)
	assert.Equal(t, 180.0, config.RotationSpeed)
	assert.Equal(t, 12, config.NModules)
	assert.True(t, config.NoDB)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigurationBadJSON(t *testing.T) {
	path := writeConfigFile(t, `{"n_modules": `)
	_, err := LoadConfiguration(path)
	assert.Error(t, err)
}
