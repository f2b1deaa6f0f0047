package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/garethgeorge/rangecalc/internal/rangefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     rangefmt.ColorAuto,
		Separator: ", ",
	}, cfg)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("RANGECALC_LOG_LEVEL", "debug")
	t.Setenv("RANGECALC_COLOR", "never")
	t.Setenv("RANGECALC_STATS", "true")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, rangefmt.ColorNever, cfg.Color)
	assert.True(t, cfg.Stats)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rangecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\nseparator: \"\\n\"\ndigest: true\n"), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "\n", cfg.Separator)
	assert.True(t, cfg.Digest)

	t.Run("missing explicit file", func(t *testing.T) {
		assert.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("no default file", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		assert.NoError(t, ReadFile(New(), ""))
	})
}

func TestLoadErrors(t *testing.T) {
	for key, value := range map[string]string{
		KeyColor:     "rainbow",
		KeyLogLevel:  "loud",
		KeyLogFormat: "xml",
	} {
		t.Run(key, func(t *testing.T) {
			v := New()
			v.Set(key, value)
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
