package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		body := "scientific = true\nmouse = false\nlog_file = \"calcpad.log\"\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Scientific)
		assert.False(t, cfg.Mouse)
		assert.True(t, cfg.AltScreen)
		assert.Equal(t, filepath.Join(dir, "calcpad.log"), cfg.LogFile)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("scientific = \n"), 0o644))

		cfg, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.Equal(t, Default(), cfg)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvVar, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", DefaultPath())

	t.Setenv(EnvVar, "")
	if base, err := os.UserConfigDir(); err == nil {
		assert.Equal(t, filepath.Join(base, "calcpad", "config.toml"), DefaultPath())
	}
}
