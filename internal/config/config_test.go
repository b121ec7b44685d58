package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvalgo.yaml")
	doc := "log_level: debug\ncolor: never\nworkers: 2\ntrace: true\ncatalog: /tmp/cases.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "/tmp/cases.yaml", cfg.Catalog)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvalgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))
	t.Setenv("LVALGO_WORKERS", "8")
	t.Setenv("LVALGO_COLOR", "ALWAYS")

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, config.ColorAlways, cfg.Color, "color mode is case-insensitive")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_Invalid(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeyColor, "rainbow")
	_, err := config.Load(v, "")
	assert.ErrorIs(t, err, config.ErrBadColor)

	v = config.NewViper()
	v.Set(config.KeyWorkers, 0)
	_, err = config.Load(v, "")
	assert.ErrorIs(t, err, config.ErrBadWorkers)
}
