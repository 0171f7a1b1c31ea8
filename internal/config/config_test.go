package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Generator.Length)
	assert.Nil(t, cfg.History.Enabled)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigDecodesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[generator]
length = 20
max-length = 64
symbols = false

[history]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Generator.Length)
	assert.Equal(t, 20, *cfg.Generator.Length)
	require.NotNil(t, cfg.Generator.MaxLength)
	assert.Equal(t, 64, *cfg.Generator.MaxLength)
	assert.Nil(t, cfg.Generator.MinLength)
	require.NotNil(t, cfg.Generator.Symbols)
	assert.False(t, *cfg.Generator.Symbols)
	assert.Nil(t, cfg.Generator.Uppercase)
	require.NotNil(t, cfg.History.Enabled)
	assert.False(t, *cfg.History.Enabled)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generator]\nlenght = 3\n"), 0o644))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "generator.lenght")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/cfg", "tuipass", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/data", "tuipass", "tuipass.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/data", "tuipass", "tuipass.log"), DefaultLogPath())
}
