package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "demo.toml", `
demo = "lighting"
profile = true

[window]
title = "lights"
width = 640
double_buffered = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lighting", cfg.Demo)
	assert.Equal(t, "lights", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	require.NotNil(t, cfg.Window.DoubleBuffered)
	assert.False(t, *cfg.Window.DoubleBuffered)
	assert.True(t, cfg.Profiling())
}

func TestLoadYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := writeFile(t, "demo"+ext, "demo: helix\nwindow:\n  height: 300\n  x: 10\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "helix", cfg.Demo)
		assert.Equal(t, 300, cfg.Window.Height)
		require.NotNil(t, cfg.Window.X)
		assert.Equal(t, 10, *cfg.Window.X)
		assert.Nil(t, cfg.Window.Y)
		assert.Nil(t, cfg.Profile)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "demo.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "bad.toml", "colour = 3\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "window:\n  width: -5\n"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	file := Config{Demo: "material", Window: Window{Title: "file", Width: 800, DoubleBuffered: boolPtr(true)}}
	flags := Config{Window: Window{Width: 320, DoubleBuffered: boolPtr(false)}}

	merged := file.Merge(flags)
	assert.Equal(t, "material", merged.Demo)
	assert.Equal(t, "file", merged.Window.Title)
	assert.Equal(t, 320, merged.Window.Width)
	assert.False(t, *merged.Window.DoubleBuffered)
	assert.False(t, merged.Profiling())
}

func TestWindowOptions(t *testing.T) {
	assert.Empty(t, Config{}.WindowOptions())

	cfg := Config{Window: Window{Title: "t", Width: 640, Height: 480, Y: intPtr(20), DoubleBuffered: boolPtr(false)}}
	wc := window.NewConfig(append([]window.WindowBuilderOption{window.WithTitle("default")}, cfg.WindowOptions()...)...)
	assert.Equal(t, window.Config{Title: "t", Width: 640, Height: 480, X: 100, Y: 20, DoubleBuffered: false}, wc)
}

func TestMergeKeepsExplicitZeroPosition(t *testing.T) {
	file := Config{Window: Window{X: intPtr(300), Y: intPtr(200)}}
	flags := Config{Window: Window{X: intPtr(0)}}

	merged := file.Merge(flags)
	require.NotNil(t, merged.Window.X)
	assert.Equal(t, 0, *merged.Window.X)
	assert.Equal(t, 200, *merged.Window.Y)

	wc := window.NewConfig(merged.WindowOptions()...)
	assert.Equal(t, 0, wc.X)
	assert.Equal(t, 200, wc.Y)
}
