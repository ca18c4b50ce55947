package maze

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameColor(t *testing.T, expected, actual color.Color) {
	t.Helper()
	assert.Equal(t, color.RGBAModel.Convert(expected),
		color.RGBAModel.Convert(actual))
}

func TestNewGridMazeRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.GridWidth = 0
	calls := 0
	outside := func(x, y int) (bool, error) {
		calls++
		return false, nil
	}
	m, e := NewGridMaze(cfg, outside)
	assert.ErrorIs(t, e, ErrInvalidConfig)
	assert.Nil(t, m)
	assert.Equal(t, 0, calls)
}

func TestNewGridMazeOccupancyError(t *testing.T) {
	failing := func(x, y int) (bool, error) {
		return false, errors.New("no image")
	}
	m, e := NewGridMaze(validConfig(), failing)
	assert.ErrorIs(t, e, ErrOccupancy)
	assert.Nil(t, m)
}

func TestGridMazeRegenerate(t *testing.T) {
	calls := 0
	outside := func(x, y int) (bool, error) {
		calls++
		return y > 6, nil
	}
	cfg := validConfig()
	cfg.End = image.Pt(9, 5)
	m, e := NewGridMaze(cfg, outside)
	require.NoError(t, e)
	assert.Equal(t, int64(42), m.Seed())
	first := m.Grid().Clone()

	require.NoError(t, m.RegenerateFromSeed(43))
	assert.NotEqual(t, first, m.Grid())
	require.NoError(t, m.RegenerateFromSeed(42))
	assert.Equal(t, first, m.Grid())
	// The shape is only sampled once.
	assert.Equal(t, 11*9, calls)

	other, e := NewGridMaze(cfg, OccupancyFromMask(maskFromFunc(10, 8,
		func(x, y int) bool { return y > 6 })))
	require.NoError(t, e)
	assert.Equal(t, m.Grid(), other.Grid())
}

func maskFromFunc(width, height int, f func(x, y int) bool) [][]bool {
	toReturn := make([][]bool, height+1)
	for y := range toReturn {
		toReturn[y] = make([]bool, width+1)
		for x := range toReturn[y] {
			toReturn[y][x] = f(x, y)
		}
	}
	return toReturn
}

func TestGridMazeTimeBasedSeed(t *testing.T) {
	var messages []string
	log := funcr.New(func(prefix, args string) {
		messages = append(messages, args)
	}, funcr.Options{})
	cfg := validConfig()
	cfg.RandomSeed = 0
	m, e := NewGridMaze(cfg, nil, WithLogr(log))
	require.NoError(t, e)
	assert.Greater(t, m.Seed(), int64(0))
	assert.Equal(t, m.Seed(), m.GetInfo().Seed)
	require.NotEmpty(t, messages)
	assert.Contains(t, messages[0], "time-based random seed")
}

func TestGridMazeSolve(t *testing.T) {
	m, e := NewGridMaze(validConfig(), nil)
	require.NoError(t, e)
	assert.Nil(t, m.SearchState())
	assert.Error(t, m.ShowSolution(true))

	var calls int
	found, e := m.Solve(ProgressFunc(func(path []image.Point) {
		calls++
	}))
	require.NoError(t, e)
	require.True(t, found)
	assert.Greater(t, calls, 0)
	state := m.SearchState()
	require.NotNil(t, state)
	assertValidPath(t, m.Grid(), state.Path(), image.Pt(0, 0),
		image.Pt(9, 7))

	info := m.GetInfo()
	assert.True(t, info.Solved)
	assert.Equal(t, state.Len(), info.PathLength)
	assert.Equal(t, 1, info.Stats.WallComponents)
	assert.Contains(t, info.DebugInfo, "random seed 42")

	// Regenerating forgets the search.
	require.NoError(t, m.RegenerateFromSeed(42))
	assert.Nil(t, m.SearchState())
	assert.False(t, m.GetInfo().Solved)
}

func TestGridMazeSolveExhausted(t *testing.T) {
	cfg := validConfig()
	cfg.MaxSteps = 0
	m, e := NewGridMaze(cfg, nil)
	require.NoError(t, e)
	found, e := m.Solve(nil)
	require.NoError(t, e)
	assert.False(t, found)
	assert.Empty(t, m.SearchState().Path())
	info := m.GetInfo()
	assert.False(t, info.Solved)
	assert.Equal(t, 0, info.PathLength)
}

func TestGridMazeInfoArrows(t *testing.T) {
	cfg := validConfig()
	cfg.CellWidth = 10
	cfg.CellHeight = 10
	cfg.Start = image.Pt(0, 4)
	cfg.End = image.Pt(9, 3)
	m, e := NewGridMaze(cfg, nil)
	require.NoError(t, e)
	info := m.GetInfo()
	assert.Equal(t, image.Pt(15, 55), info.StartPoint)
	assert.Equal(t, image.Pt(105, 45), info.EndPoint)
	// In from the left, out to the right.
	assert.Equal(t, float32(0), info.StartAngle)
	assert.Equal(t, float32(0), info.EndAngle)

	cfg.Start = image.Pt(4, 0)
	cfg.End = image.Pt(5, 7)
	m, e = NewGridMaze(cfg, nil)
	require.NoError(t, e)
	info = m.GetInfo()
	// Down from the top, down out of the bottom.
	assert.Equal(t, float32(270), info.StartAngle)
	assert.Equal(t, float32(270), info.EndAngle)
}

func TestNearestEdge(t *testing.T) {
	assert.Equal(t, dirLeft, nearestEdge(image.Pt(0, 0), 5, 5))
	assert.Equal(t, dirUp, nearestEdge(image.Pt(2, 0), 5, 5))
	assert.Equal(t, dirRight, nearestEdge(image.Pt(4, 2), 5, 5))
	assert.Equal(t, dirDown, nearestEdge(image.Pt(2, 4), 5, 5))
}

func TestGridMazeRendering(t *testing.T) {
	cfg := validConfig()
	cfg.CellWidth = 9
	cfg.CellHeight = 9
	m, e := NewGridMaze(cfg, nil)
	require.NoError(t, e)
	var _ Maze = m

	assert.Equal(t, image.Rect(0, 0, 9*12, 9*10), m.Bounds())
	sameColor(t, color.Transparent, m.At(-1, 0))
	// The margin, and the top-left corner of the border.
	sameColor(t, color.White, m.At(3, 3))
	sameColor(t, color.Black, m.At(9, 9))
	sameColor(t, color.Black, m.At(13, 9))
	sameColor(t, color.Black, m.At(9, 13))

	start := m.GetInfo().StartPoint
	sameColor(t, color.White, m.At(start.X, start.Y))
	found, e := m.Solve(nil)
	require.NoError(t, e)
	require.True(t, found)
	require.NoError(t, m.ShowSolution(true))
	sameColor(t, solutionColor, m.At(start.X, start.Y))
	end := m.GetInfo().EndPoint
	sameColor(t, solutionColor, m.At(end.X, end.Y))

	require.NoError(t, m.ShowSolution(false))
	sameColor(t, color.White, m.At(start.X, start.Y))
}

func TestGridMazeRendersDeadEnds(t *testing.T) {
	cfg := validConfig()
	cfg.CellWidth = 9
	cfg.CellHeight = 9
	m, e := NewGridMaze(cfg, nil)
	require.NoError(t, e)
	found, e := m.Solve(nil)
	require.NoError(t, e)
	require.True(t, found)
	deadEnds := m.SearchState().DeadEnds()
	require.NotEmpty(t, deadEnds)
	p := m.cellCenter(deadEnds[0])
	sameColor(t, color.White, m.At(p.X, p.Y))
	m.ShowDeadEnds(true)
	sameColor(t, deadEndColor, m.At(p.X, p.Y))
}

func TestCellCoversLinks(t *testing.T) {
	cfg := validConfig()
	cfg.CellWidth = 9
	cfg.CellHeight = 9
	m, e := NewGridMaze(cfg, nil)
	require.NoError(t, e)
	c := renderCell{state: cellSolutionPath, links: 1 << dirRight}
	assert.True(t, m.cellCovers(c, 4, 4))
	assert.True(t, m.cellCovers(c, 8, 4))
	assert.False(t, m.cellCovers(c, 0, 4))
	assert.False(t, m.cellCovers(c, 4, 8))
	assert.False(t, m.cellCovers(c, 8, 8))

	dead := renderCell{state: cellDeadEnd, links: 1 << dirRight}
	assert.False(t, m.cellCovers(dead, 8, 4))
}

func TestAddImageBorder(t *testing.T) {
	pic := image.NewRGBA(image.Rect(0, 0, 4, 4))
	bordered := AddImageBorder(pic, 2, color.White)
	assert.Equal(t, image.Rect(0, 0, 8, 8), bordered.Bounds())
	sameColor(t, color.White, bordered.At(0, 0))
	sameColor(t, color.Transparent, bordered.At(3, 3))
}
