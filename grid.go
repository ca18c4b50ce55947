package maze

import (
	"fmt"
	"image"
	"strings"
)

// Directions, used both when growing walls and when searching for a path.
const (
	dirLeft  = 0
	dirUp    = 1
	dirRight = 2
	dirDown  = 3
)

// Returns the x and y offsets for moving one step in the given direction.
func dirOffset(dir int) (int, int) {
	switch dir {
	case dirLeft:
		return -1, 0
	case dirUp:
		return 0, -1
	case dirRight:
		return 1, 0
	case dirDown:
		return 0, 1
	}
	panic(fmt.Sprintf("Bad direction: %d", dir))
}

// A Grid is the lattice of wall "vertices" underlying a maze, along with the
// wall segments joining them. A grid that is width cells wide and height cells
// high has (width + 1) * (height + 1) vertices. Vertex (x, y) is the top-left
// corner of the cell at (x, y).
//
// Both the in-network flags and the walls can only ever be set, never
// cleared.
type Grid struct {
	width  int
	height int
	// Row-major, (height + 1) rows of (width + 1) entries. True once a vertex
	// is part of the wall structure, or lies outside the usable region.
	inNetwork []bool
	// Row-major, (height + 1) rows of width entries. Entry (x, y) is the
	// segment from vertex (x, y) to vertex (x + 1, y).
	wallH []bool
	// Row-major, height rows of (width + 1) entries. Entry (x, y) is the
	// segment from vertex (x, y) to vertex (x, y + 1).
	wallV []bool
}

// Returns a new grid with the given number of cells across and down. The
// outer border is walled and in the network; nothing else is set.
func NewGrid(width, height int) (*Grid, error) {
	if (width < 1) || (height < 1) {
		return nil, fmt.Errorf("%w: grid width and height must be at "+
			"least 1, got %dx%d", ErrInvalidConfig, width, height)
	}
	vertexCount := (width + 1) * (height + 1)
	// Check for overflow.
	if (vertexCount <= 0) || (vertexCount/(width+1) != (height + 1)) {
		return nil, fmt.Errorf("%w: the grid's size was too big",
			ErrInvalidConfig)
	}
	g := &Grid{
		width:     width,
		height:    height,
		inNetwork: make([]bool, vertexCount),
		wallH:     make([]bool, (height+1)*width),
		wallV:     make([]bool, height*(width+1)),
	}
	g.setBorder()
	return g, nil
}

// Walls in the outer border and marks every border vertex as in-network.
func (g *Grid) setBorder() {
	for x := 0; x <= g.width; x++ {
		g.SetInNetwork(x, 0)
		g.SetInNetwork(x, g.height)
		if x < g.width {
			g.AddHorizontalWall(x, 0)
			g.AddHorizontalWall(x, g.height)
		}
	}
	for y := 0; y <= g.height; y++ {
		g.SetInNetwork(0, y)
		g.SetInNetwork(g.width, y)
		if y < g.height {
			g.AddVerticalWall(0, y)
			g.AddVerticalWall(g.width, y)
		}
	}
}

// Returns the number of cells across the grid.
func (g *Grid) Width() int {
	return g.width
}

// Returns the number of cells down the grid.
func (g *Grid) Height() int {
	return g.height
}

// Returns true if (x, y) is a vertex of the grid.
func (g *Grid) ContainsVertex(x, y int) bool {
	return (x >= 0) && (y >= 0) && (x <= g.width) && (y <= g.height)
}

// Returns true if p addresses a cell of the grid.
func (g *Grid) ContainsCell(p image.Point) bool {
	return (p.X >= 0) && (p.Y >= 0) && (p.X < g.width) && (p.Y < g.height)
}

// Returns true if vertex (x, y) is part of the wall network, or lies outside
// the maze's region.
func (g *Grid) InNetwork(x, y int) bool {
	return g.inNetwork[y*(g.width+1)+x]
}

// Marks vertex (x, y) as part of the wall network.
func (g *Grid) SetInNetwork(x, y int) {
	g.inNetwork[y*(g.width+1)+x] = true
}

// Returns true if a wall joins vertex (x, y) to vertex (x + 1, y).
func (g *Grid) HorizontalWall(x, y int) bool {
	return g.wallH[y*g.width+x]
}

// Adds a wall from vertex (x, y) to vertex (x + 1, y).
func (g *Grid) AddHorizontalWall(x, y int) {
	g.wallH[y*g.width+x] = true
}

// Returns true if a wall joins vertex (x, y) to vertex (x, y + 1).
func (g *Grid) VerticalWall(x, y int) bool {
	return g.wallV[y*(g.width+1)+x]
}

// Adds a wall from vertex (x, y) to vertex (x, y + 1).
func (g *Grid) AddVerticalWall(x, y int) {
	g.wallV[y*(g.width+1)+x] = true
}

// Adds the wall segment leaving vertex (x, y) in the given direction.
func (g *Grid) addWall(x, y, dir int) {
	switch dir {
	case dirLeft:
		g.AddHorizontalWall(x-1, y)
	case dirUp:
		g.AddVerticalWall(x, y-1)
	case dirRight:
		g.AddHorizontalWall(x, y)
	case dirDown:
		g.AddVerticalWall(x, y)
	default:
		panic(fmt.Sprintf("Bad direction: %d", dir))
	}
}

// Returns true if no wall separates the cell p from its neighbor in the given
// direction. The border is always walled, so an open side never leads off the
// grid.
func (g *Grid) cellOpen(p image.Point, dir int) bool {
	switch dir {
	case dirLeft:
		return !g.VerticalWall(p.X, p.Y)
	case dirUp:
		return !g.HorizontalWall(p.X, p.Y)
	case dirRight:
		return !g.VerticalWall(p.X+1, p.Y)
	case dirDown:
		return !g.HorizontalWall(p.X, p.Y+1)
	}
	panic(fmt.Sprintf("Bad direction: %d", dir))
}

// Returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	toReturn := &Grid{
		width:     g.width,
		height:    g.height,
		inNetwork: make([]bool, len(g.inNetwork)),
		wallH:     make([]bool, len(g.wallH)),
		wallV:     make([]bool, len(g.wallV)),
	}
	copy(toReturn.inNetwork, g.inNetwork)
	copy(toReturn.wallH, g.wallH)
	copy(toReturn.wallV, g.wallV)
	return toReturn
}

// Draws the grid's walls using ASCII characters.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y <= g.height; y++ {
		b.WriteString("+")
		for x := 0; x < g.width; x++ {
			if g.HorizontalWall(x, y) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
		if y == g.height {
			break
		}
		for x := 0; x <= g.width; x++ {
			if g.VerticalWall(x, y) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
			if x < g.width {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Returns one line per vertex row, with a '*' for every in-network vertex.
// Mostly useful for debugging shape masks.
func (g *Grid) NetworkString() string {
	var b strings.Builder
	for y := 0; y <= g.height; y++ {
		for x := 0; x <= g.width; x++ {
			if g.InNetwork(x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
