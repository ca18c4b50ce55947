package maze

import (
	"fmt"
)

// Implements the disjoint set data structure from CLRS.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// Returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	toReturn := disjointSet{
		rank: 0,
	}
	toReturn.parent = &toReturn
	return &toReturn
}

// Finds the unique "root" of a disjoint set. May adjust parent pointers.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// Adjusts both s and other to become part of the same set. May adjust parent
// pointers and ranks.
func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}

// Summarizes the wall structure of a Grid.
type GridStats struct {
	// The number of vertices that are in the network.
	InNetwork int
	// The number of wall segments.
	Walls int
	// The number of connected groups of walls.
	WallComponents int
	// The number of wall segments that joined two vertices which were already
	// connected by other walls. The border alone is a single cycle, so a grid
	// whose walls form a tree hanging off the border has exactly 1.
	WallCycles int
}

func (s GridStats) String() string {
	return fmt.Sprintf("%d in-network vertices, %d walls, %d wall "+
		"components, %d wall cycles", s.InNetwork, s.Walls, s.WallComponents,
		s.WallCycles)
}

// Computes statistics about the grid's walls.
func (g *Grid) Stats() GridStats {
	var toReturn GridStats
	// Sets are only allocated for vertices touched by at least one wall.
	sets := make([]*disjointSet, len(g.inNetwork))
	setFor := func(x, y int) *disjointSet {
		index := y*(g.width+1) + x
		if sets[index] == nil {
			sets[index] = newDisjointSet()
		}
		return sets[index]
	}
	join := func(a, b *disjointSet) {
		toReturn.Walls++
		if a.findSet() == b.findSet() {
			toReturn.WallCycles++
			return
		}
		a.union(b)
	}

	for _, v := range g.inNetwork {
		if v {
			toReturn.InNetwork++
		}
	}
	for y := 0; y <= g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.HorizontalWall(x, y) {
				join(setFor(x, y), setFor(x+1, y))
			}
		}
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x <= g.width; x++ {
			if g.VerticalWall(x, y) {
				join(setFor(x, y), setFor(x, y+1))
			}
		}
	}

	roots := make(map[*disjointSet]struct{})
	for _, s := range sets {
		if s != nil {
			roots[s.findSet()] = struct{}{}
		}
	}
	toReturn.WallComponents = len(roots)
	return toReturn
}
