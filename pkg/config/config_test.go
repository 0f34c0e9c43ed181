package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points: 120\nout: brain.png\nno-wagner: true\n"), 0o644))
	t.Setenv("GODIELECTRIC_DPI", "300")
	t.Setenv("GODIELECTRIC_EPS_SCALE", "1e-3")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Points)
	assert.Equal(t, "brain.png", cfg.ImgPath)
	assert.True(t, cfg.NoWagner)
	assert.Equal(t, uint(300), cfg.ImgDPI)
	assert.Equal(t, 1e-3, cfg.EpsScale)
	assert.Equal(t, 1.0, cfg.FromExp)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Points = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.FromExp, cfg.ToExp = 4, 1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ImgSize = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.EpsScale = -1
	assert.Error(t, cfg.Validate())
}
