package maze

import (
	"fmt"
)

// Reports whether the grid vertex (x, y) lies outside the region the maze
// should fill. An error means the underlying mask couldn't be consulted.
type OccupancyFunc func(x, y int) (bool, error)

// Returns an OccupancyFunc backed by mask, indexed as mask[y][x]. Vertices
// that the mask doesn't cover are reported as errors.
func OccupancyFromMask(mask [][]bool) OccupancyFunc {
	return func(x, y int) (bool, error) {
		if (y < 0) || (y >= len(mask)) || (x < 0) || (x >= len(mask[y])) {
			return false, fmt.Errorf("the mask has no entry for vertex "+
				"(%d, %d)", x, y)
		}
		return mask[y][x], nil
	}
}

// Evaluates outside once for every vertex of a width x height grid, in
// row-major order. A nil predicate yields a nil mask.
func sampleOccupancy(width, height int, outside OccupancyFunc) ([]bool,
	error) {
	if outside == nil {
		return nil, nil
	}
	toReturn := make([]bool, (width+1)*(height+1))
	index := 0
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			v, e := outside(x, y)
			if e != nil {
				return nil, fmt.Errorf("%w: sampling vertex (%d, %d): %w",
					ErrOccupancy, x, y, e)
			}
			toReturn[index] = v
			index++
		}
	}
	return toReturn, nil
}

// Restricts the grid to the region described by outside. Vertices outside the
// region become part of the network, so walls will never be grown there, and
// the outline of the region is walled in. The predicate is called exactly
// once per vertex, and if it fails the grid is left unchanged.
func (g *Grid) ApplyShape(outside OccupancyFunc) error {
	mask, e := sampleOccupancy(g.width, g.height, outside)
	if e != nil {
		return e
	}
	g.applyMask(mask)
	return nil
}

// Applies a mask returned by sampleOccupancy for a grid of the same size.
func (g *Grid) applyMask(mask []bool) {
	if mask == nil {
		return
	}
	for i, v := range mask {
		if v {
			g.inNetwork[i] = true
		}
	}

	// Walk down each column of horizontal segments. A segment is "outside"
	// if both of its ends are. A wall goes on the last outside segment before
	// the region starts, and on the first outside segment after it ends.
	for x := 0; x < g.width; x++ {
		previousOutside := true
		for y := 1; y <= g.height; y++ {
			lineOutside := g.InNetwork(x, y) && g.InNetwork(x+1, y)
			if previousOutside && !lineOutside {
				g.AddHorizontalWall(x, y-1)
			} else if !previousOutside && lineOutside {
				g.AddHorizontalWall(x, y)
			}
			previousOutside = lineOutside
		}
	}

	// Same thing, across each row of vertical segments.
	for y := 0; y < g.height; y++ {
		previousOutside := true
		for x := 1; x <= g.width; x++ {
			lineOutside := g.InNetwork(x, y) && g.InNetwork(x, y+1)
			if previousOutside && !lineOutside {
				g.AddVerticalWall(x-1, y)
			} else if !previousOutside && lineOutside {
				g.AddVerticalWall(x, y)
			}
			previousOutside = lineOutside
		}
	}
}
