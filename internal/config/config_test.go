package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, "", cfg.DefaultTitle)
	assert.False(t, cfg.Fallback)
	assert.False(t, cfg.UniqueGroup)
	assert.Equal(t, 0, cfg.WaitTimeoutSeconds)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"default_title": "gopync",
		"default_sound": "Ping",
		"fallback": true,
		"wait_timeout_seconds": 30
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gopync", cfg.DefaultTitle)
	assert.Equal(t, "Ping", cfg.DefaultSound)
	assert.True(t, cfg.Fallback)
	assert.Equal(t, 30, cfg.WaitTimeoutSeconds)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_sound": "Ping"}`), 0644))

	t.Setenv("GOPYNC_DEFAULT_SOUND", "Basso")
	t.Setenv("GOPYNC_UNIQUE_GROUP", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Basso", cfg.DefaultSound)
	assert.True(t, cfg.UniqueGroup)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wait_timeout_seconds": -5}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "default_sound", envTransform("GOPYNC_DEFAULT_SOUND"))
	assert.Equal(t, "wait_timeout_seconds", envTransform("GOPYNC_WAIT_TIMEOUT_SECONDS"))
}
