package main

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	maze "github.com/yalue/shaped_maze"
)

const testPresets = `
Heart:
  template_image: shapes/heart.png
  cell_width: 4
  cell_height: 5
  start: {x: 3, y: 10}
  end: {x: 40, y: 12}
  random_seed: 1234
small:
  grid_width: 6
  grid_height: 4
  max_steps: 100
`

func TestParsePresets(t *testing.T) {
	ps, e := parsePresets(strings.NewReader(testPresets))
	require.NoError(t, e)
	require.Len(t, ps, 2)

	heart, e := ps.get("HEART")
	require.NoError(t, e)
	assert.Equal(t, "shapes/heart.png", heart.TemplateImage)
	assert.Equal(t, 4, heart.Config.CellWidth)
	assert.Equal(t, 5, heart.Config.CellHeight)
	assert.Equal(t, image.Pt(3, 10), heart.Config.Start)
	assert.Equal(t, image.Pt(40, 12), heart.Config.End)
	assert.Equal(t, int64(1234), heart.Config.RandomSeed)
	// Unset fields keep their defaults.
	assert.Equal(t, maze.DefaultMaxSteps, heart.Config.MaxSteps)
	assert.Equal(t, maze.DefaultProgressInterval,
		heart.Config.ProgressInterval)

	small, e := ps.get("small")
	require.NoError(t, e)
	assert.Empty(t, small.TemplateImage)
	assert.Equal(t, 6, small.Config.GridWidth)
	assert.Equal(t, 4, small.Config.GridHeight)
	assert.Equal(t, 100, small.Config.MaxSteps)
	assert.Equal(t, 2, small.Config.CellWidth)
	assert.NoError(t, small.Config.Validate())
}

func TestParsePresetsEmpty(t *testing.T) {
	ps, e := parsePresets(strings.NewReader(""))
	require.NoError(t, e)
	assert.Empty(t, ps)
}

func TestParsePresetsInvalid(t *testing.T) {
	_, e := parsePresets(strings.NewReader("a: {cell_width: wide}"))
	assert.Error(t, e)
	_, e = parsePresets(strings.NewReader("- not\n- a map\n"))
	assert.Error(t, e)
}

func TestGetUnknownPreset(t *testing.T) {
	_, e := builtinPresets().get("spiral")
	require.Error(t, e)
	assert.Contains(t, e.Error(), "spiral")
	assert.Contains(t, e.Error(), "test")
}

func TestBuiltinPresets(t *testing.T) {
	p, e := builtinPresets().get("Test")
	require.NoError(t, e)
	assert.Equal(t, image.Pt(6, 18), p.Config.Start)
	assert.Equal(t, image.Pt(230, 45), p.Config.End)
	assert.Equal(t, int64(654321), p.Config.RandomSeed)
	assert.Equal(t, maze.DefaultMaxSteps, p.Config.MaxSteps)
}

func TestLoadPresets(t *testing.T) {
	ps, e := loadPresets("")
	require.NoError(t, e)
	assert.Len(t, ps, 1)

	filename := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(testPresets+`
test:
  cell_width: 3
`), 0644))
	ps, e = loadPresets(filename)
	require.NoError(t, e)
	assert.Len(t, ps, 3)
	// Presets in the file replace built-in ones with the same name.
	p, e := ps.get("test")
	require.NoError(t, e)
	assert.Equal(t, 3, p.Config.CellWidth)
	assert.Empty(t, p.TemplateImage)

	_, e = loadPresets(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, e)
}
