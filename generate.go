package maze

import (
	"math/rand"
)

// Grows walls on g until every interior vertex is part of the network. The
// result only depends on the grid's current state and the sequence of values
// drawn from rng.
//
// Walls are grown rather than passages carved: each new wall starts at a free
// vertex, is attached to an existing part of the network, and then wanders
// randomly until it runs out of free neighbors. Vertices outside the maze's
// shape are already in the network, so walls never grow there.
func Generate(g *Grid, rng *rand.Rand) {
	// There are no interior vertices unless the grid is at least 2x2.
	if (g.width > 1) && (g.height > 1) {
		attempts := g.width * g.height
		for i := 0; i < attempts; i++ {
			x, y, ok := g.attachNewWall(rng)
			if ok {
				g.growWall(rng, x, y)
			}
		}
	}
	g.closeGaps(rng)
}

// Picks a random interior vertex. If it's free, walks from it in a random
// direction until reaching the network, and connects the last free vertex on
// the way to the network. Returns that vertex, or false if the picked vertex
// was already in the network.
func (g *Grid) attachNewWall(rng *rand.Rand) (int, int, bool) {
	x := 1 + rng.Intn(g.width-1)
	y := 1 + rng.Intn(g.height-1)
	if g.InNetwork(x, y) {
		return 0, 0, false
	}
	dir := rng.Intn(4)
	dx, dy := dirOffset(dir)
	// This always stops, at the border if nowhere else.
	for !g.InNetwork(x, y) {
		x += dx
		y += dy
	}
	x -= dx
	y -= dy
	g.addWall(x, y, dir)
	g.SetInNetwork(x, y)
	return x, y, true
}

// Fills dirs with the directions in which (x, y) has a free neighbor, in the
// order left, up, right, down. Returns the filled part of dirs.
func (g *Grid) freeDirections(x, y int, dirs []int) []int {
	dirs = dirs[:0]
	if (x > 0) && !g.InNetwork(x-1, y) {
		dirs = append(dirs, dirLeft)
	}
	if (y > 0) && !g.InNetwork(x, y-1) {
		dirs = append(dirs, dirUp)
	}
	if (x < g.width) && !g.InNetwork(x+1, y) {
		dirs = append(dirs, dirRight)
	}
	if (y < g.height) && !g.InNetwork(x, y+1) {
		dirs = append(dirs, dirDown)
	}
	return dirs
}

// Extends a wall from (x, y), one random free neighbor at a time, until the
// current vertex has no free neighbors left.
func (g *Grid) growWall(rng *rand.Rand, x, y int) {
	var buffer [4]int
	dirs := g.freeDirections(x, y, buffer[:])
	for len(dirs) != 0 {
		dir := dirs[rng.Intn(len(dirs))]
		g.addWall(x, y, dir)
		dx, dy := dirOffset(dir)
		x += dx
		y += dy
		g.SetInNetwork(x, y)
		dirs = g.freeDirections(x, y, buffer[:])
	}
}

// Connects every interior vertex that is still free to its left or upper
// neighbor, chosen by a coin flip. Vertices are visited in row-major order, so
// both of those neighbors are always in the network by then.
func (g *Grid) closeGaps(rng *rand.Rand) {
	for y := 1; y < g.height; y++ {
		for x := 1; x < g.width; x++ {
			if g.InNetwork(x, y) {
				continue
			}
			g.SetInNetwork(x, y)
			if rng.Intn(2) == 0 {
				g.addWall(x, y, dirLeft)
			} else {
				g.addWall(x, y, dirUp)
			}
		}
	}
}
