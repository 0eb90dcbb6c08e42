package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFilePath_EnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PHOTOGRID_CONFIG_DIR", dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), getConfigFilePath())
	assert.Equal(t, dir, GetConfigDir())
}

func TestLoadFile_MissingUserConfigUsesDefaults(t *testing.T) {
	t.Setenv("PHOTOGRID_CONFIG_DIR", t.TempDir())

	c, warnings, err := LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 9, c.Grid.MaxSlots)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.toml")
	require.NoError(t, os.WriteFile(file, []byte("[grid]\ncolumns = 5\nrows = 2\n"), 0o644))

	c, warnings, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Grid.Columns)
	assert.Equal(t, []string{`unknown config key "grid.rows"`}, warnings)
}

func TestLoadFile_InvalidConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.toml")
	require.NoError(t, os.WriteFile(file, []byte("[grid]\ncolumns = 0\n"), 0o644))

	_, _, err := LoadFile(file)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFile_MissingExplicitPath(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
