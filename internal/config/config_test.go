package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "preset.toml", `
size = 6
workers = 3
inverted = true
orientation = "rotate90"
`)
	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, p.TileSize)
	assert.Equal(t, 3, p.Workers)
	assert.True(t, p.Inverted)
	assert.Equal(t, "rotate90", p.Orientation)
	assert.Equal(t, config.Default().Scale, p.Scale)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "preset.yml", "scale: 1.5\ncolor: true\nwidth: 320\n")
	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Scale)
	assert.True(t, p.Color)
	assert.Equal(t, uint(320), p.Width)
	assert.Equal(t, config.Default().TileSize, p.TileSize)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "preset.json", "{}"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "preset.toml", "size = \"big\""))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeOnlyChangedFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.Register(fs)
	require.NoError(t, fs.Parse([]string{"--workers", "2", "-i"}))

	file := config.Default()
	file.TileSize = 12
	file.Scale = 2

	p, err := config.Merge(file, fs)
	require.NoError(t, err)
	assert.Equal(t, 12, p.TileSize)
	assert.Equal(t, 2.0, p.Scale)
	assert.Equal(t, 2, p.Workers)
	assert.True(t, p.Inverted)
}

func TestRenderConfig(t *testing.T) {
	p := config.Default()
	cfg, err := p.RenderConfig(ascii.Rotate270)
	require.NoError(t, err)
	assert.Equal(t, ascii.Rotate270, cfg.Orientation)
	assert.Equal(t, ascii.DefaultConfig().TileSize, cfg.TileSize)

	p.Orientation = "flip-h"
	cfg, err = p.RenderConfig(ascii.Rotate270)
	require.NoError(t, err)
	assert.Equal(t, ascii.FlipH, cfg.Orientation)

	p.Orientation = "diagonal"
	_, err = p.RenderConfig(ascii.Upright)
	assert.ErrorIs(t, err, ascii.ErrInvalidConfig)

	p = config.Default()
	p.Workers = 0
	_, err = p.RenderConfig(ascii.Upright)
	assert.ErrorIs(t, err, ascii.ErrInvalidConfig)
}
