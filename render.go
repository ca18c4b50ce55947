package maze

import (
	"fmt"
	"image"
	"image/color"
)

// Differentiates between the ways a cell can be drawn.
type cellState uint8

const (
	cellNormal cellState = iota
	cellSolutionPath
	cellDeadEnd
)

func (s cellState) String() string {
	switch s {
	case cellNormal:
		return "normal"
	case cellSolutionPath:
		return "solutionPath"
	case cellDeadEnd:
		return "deadEnd"
	}
	return fmt.Sprintf("Unknown cellState: %d", uint8(s))
}

var (
	wallColor     = color.Black
	solutionColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	deadEndColor  = color.RGBA{R: 230, G: 20, B: 20, A: 255}
)

// How a single cell is drawn.
type renderCell struct {
	state cellState
	// Bit n is set if the solution path continues in direction n. Used to
	// join the filled parts of neighboring path cells.
	links uint8
}

// Rebuilds the per-cell drawing state from the last search.
func (m *GridMaze) updateCells() {
	count := m.grid.Width() * m.grid.Height()
	if len(m.cells) != count {
		m.cells = make([]renderCell, count)
	}
	for i := range m.cells {
		m.cells[i] = renderCell{}
	}
	if m.search == nil {
		return
	}
	width := m.grid.Width()
	if m.showDeadEnds {
		for p := range m.search.deadEnds {
			m.cells[p.Y*width+p.X].state = cellDeadEnd
		}
	}
	if !m.showSolution {
		return
	}
	path := m.search.path
	for i, p := range path {
		m.cells[p.Y*width+p.X].state = cellSolutionPath
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dir := directionBetween(prev, p)
		m.cells[prev.Y*width+prev.X].links |= 1 << dir
		m.cells[p.Y*width+p.X].links |= 1 << ((dir + 2) % 4)
	}
}

// Returns the direction leading from a to the neighboring cell b.
func directionBetween(a, b image.Point) int {
	switch {
	case b.X < a.X:
		return dirLeft
	case b.Y < a.Y:
		return dirUp
	case b.X > a.X:
		return dirRight
	}
	return dirDown
}

// Returns the first and last pixel offset, within a cell of the given size, to
// fill when highlighting the cell.
func fillRange(size int) (int, int) {
	if size > 6 {
		return 3, size - 3
	}
	return 1, size - 1
}

func (m *GridMaze) ColorModel() color.Model {
	return color.RGBAModel
}

// The maze is surrounded by a margin of one cell on every side.
func (m *GridMaze) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.cfg.CellWidth*(m.grid.Width()+2),
		m.cfg.CellHeight*(m.grid.Height()+2))
}

// Returns true if vertex (x, y) is the end of any wall segment.
func (m *GridMaze) vertexWalled(x, y int) bool {
	g := m.grid
	if (x > 0) && g.HorizontalWall(x-1, y) {
		return true
	}
	if (x < g.Width()) && g.HorizontalWall(x, y) {
		return true
	}
	if (y > 0) && g.VerticalWall(x, y-1) {
		return true
	}
	return (y < g.Height()) && g.VerticalWall(x, y)
}

// Takes pixel offsets relative to the top left vertex of the grid. Returns
// true if the pixel lies on a wall.
func (m *GridMaze) onWall(gx, gy int) bool {
	cw := m.cfg.CellWidth
	ch := m.cfg.CellHeight
	x := gx / cw
	y := gy / ch
	onRow := (gy % ch) == 0
	onColumn := (gx % cw) == 0
	if onRow && onColumn {
		return m.vertexWalled(x, y)
	}
	if onRow {
		return (x < m.grid.Width()) && m.grid.HorizontalWall(x, y)
	}
	if onColumn {
		return (y < m.grid.Height()) && m.grid.VerticalWall(x, y)
	}
	return false
}

// Returns true if the highlight of the cell covers the given pixel offset
// within the cell.
func (m *GridMaze) cellCovers(c renderCell, ox, oy int) bool {
	loX, hiX := fillRange(m.cfg.CellWidth)
	loY, hiY := fillRange(m.cfg.CellHeight)
	inX := (ox >= loX) && (ox <= hiX)
	inY := (oy >= loY) && (oy <= hiY)
	if inX && inY {
		return true
	}
	// Dead ends are only drawn as isolated squares.
	if c.state != cellSolutionPath {
		return false
	}
	if inY {
		if (ox < loX) && ((c.links & (1 << dirLeft)) != 0) {
			return true
		}
		if (ox > hiX) && ((c.links & (1 << dirRight)) != 0) {
			return true
		}
	}
	if inX {
		if (oy < loY) && ((c.links & (1 << dirUp)) != 0) {
			return true
		}
		if (oy > hiY) && ((c.links & (1 << dirDown)) != 0) {
			return true
		}
	}
	return false
}

func (m *GridMaze) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	cw := m.cfg.CellWidth
	ch := m.cfg.CellHeight
	gx := x - cw
	gy := y - ch
	if (gx < 0) || (gy < 0) || (gx > cw*m.grid.Width()) ||
		(gy > ch*m.grid.Height()) {
		return color.White
	}
	if m.onWall(gx, gy) {
		return wallColor
	}
	col := gx / cw
	row := gy / ch
	if (col >= m.grid.Width()) || (row >= m.grid.Height()) {
		return color.White
	}
	c := m.cells[row*m.grid.Width()+col]
	if c.state == cellNormal {
		return color.White
	}
	if !m.cellCovers(c, gx%cw, gy%ch) {
		return color.White
	}
	if c.state == cellSolutionPath {
		return solutionColor
	}
	return deadEndColor
}

// Satisfies the Image interface, surrounds an image with a solid-color border.
type imageBorder struct {
	pic         image.Image
	picBounds   image.Rectangle
	borderWidth int
	fillColor   color.Color
}

func (b *imageBorder) ColorModel() color.Model {
	return b.pic.ColorModel()
}

func (b *imageBorder) Bounds() image.Rectangle {
	tmp := b.picBounds
	w := b.borderWidth * 2
	return image.Rect(0, 0, tmp.Dx()+w, tmp.Dy()+w)
}

func (b *imageBorder) At(x, y int) color.Color {
	tmp := b.picBounds
	if (x < b.borderWidth) || (y < b.borderWidth) {
		return b.fillColor
	}
	if (x >= tmp.Dx()+b.borderWidth) || (y >= tmp.Dy()+b.borderWidth) {
		return b.fillColor
	}
	return b.pic.At(x-b.borderWidth+tmp.Min.X, y-b.borderWidth+tmp.Min.Y)
}

// Returns a new image, consisting of the given image surrounded by a border
// of the given color and width in pixels.
func AddImageBorder(pic image.Image, width int, fill color.Color) image.Image {
	return &imageBorder{
		pic:         pic,
		picBounds:   pic.Bounds(),
		borderWidth: width,
		fillColor:   fill,
	}
}
