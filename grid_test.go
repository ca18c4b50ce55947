package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Checks that every border vertex is in the network and every border segment
// is walled.
func assertBorder(t *testing.T, g *Grid) {
	t.Helper()
	w, h := g.Width(), g.Height()
	for x := 0; x <= w; x++ {
		assert.True(t, g.InNetwork(x, 0), "vertex (%d, 0)", x)
		assert.True(t, g.InNetwork(x, h), "vertex (%d, %d)", x, h)
		if x < w {
			assert.True(t, g.HorizontalWall(x, 0), "top wall %d", x)
			assert.True(t, g.HorizontalWall(x, h), "bottom wall %d", x)
		}
	}
	for y := 0; y <= h; y++ {
		assert.True(t, g.InNetwork(0, y), "vertex (0, %d)", y)
		assert.True(t, g.InNetwork(w, y), "vertex (%d, %d)", w, y)
		if y < h {
			assert.True(t, g.VerticalWall(0, y), "left wall %d", y)
			assert.True(t, g.VerticalWall(w, y), "right wall %d", y)
		}
	}
}

func TestNewGrid(t *testing.T) {
	g, e := NewGrid(5, 3)
	require.NoError(t, e)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assertBorder(t, g)

	for y := 1; y < 3; y++ {
		for x := 1; x < 5; x++ {
			assert.False(t, g.InNetwork(x, y), "vertex (%d, %d)", x, y)
		}
	}
	for y := 1; y < 3; y++ {
		for x := 0; x < 5; x++ {
			assert.False(t, g.HorizontalWall(x, y))
		}
	}

	stats := g.Stats()
	assert.Equal(t, GridStats{
		InNetwork:      16,
		Walls:          16,
		WallComponents: 1,
		WallCycles:     1,
	}, stats)
}

func TestNewGridInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative", -3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, e := NewGrid(tt.width, tt.height)
			assert.ErrorIs(t, e, ErrInvalidConfig)
			assert.Nil(t, g)
		})
	}
}

func TestGridContains(t *testing.T) {
	g, e := NewGrid(3, 2)
	require.NoError(t, e)
	assert.True(t, g.ContainsVertex(3, 2))
	assert.False(t, g.ContainsVertex(4, 2))
	assert.False(t, g.ContainsVertex(-1, 0))
	assert.True(t, g.ContainsCell(pt(2, 1)))
	assert.False(t, g.ContainsCell(pt(3, 1)))
	assert.False(t, g.ContainsCell(pt(0, 2)))
}

func TestGridString(t *testing.T) {
	g, e := NewGrid(2, 1)
	require.NoError(t, e)
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", g.String())

	g.AddVerticalWall(1, 0)
	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", g.String())
	assert.Equal(t, "***\n***\n", g.NetworkString())
}

func TestGridClone(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	c := g.Clone()
	assert.Equal(t, g, c)

	c.SetInNetwork(1, 1)
	c.AddHorizontalWall(1, 1)
	assert.False(t, g.InNetwork(1, 1))
	assert.False(t, g.HorizontalWall(1, 1))
	assert.NotEqual(t, g, c)
}

func TestStatsCountsCycles(t *testing.T) {
	g, e := NewGrid(3, 3)
	require.NoError(t, e)
	// A free-standing square of walls around the center cell.
	g.AddHorizontalWall(1, 1)
	g.AddHorizontalWall(1, 2)
	g.AddVerticalWall(1, 1)
	g.AddVerticalWall(2, 1)
	stats := g.Stats()
	assert.Equal(t, 16, stats.Walls)
	assert.Equal(t, 2, stats.WallComponents)
	assert.Equal(t, 2, stats.WallCycles)
}
