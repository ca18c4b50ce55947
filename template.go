package maze

import (
	"fmt"
	"image"
	"image/color"
)

// The number of pixels of a template image, across and down, that aren't
// covered by the maze grid.
const templateMargin = 6

// Returns true if the color counts as part of the maze region in a template
// image. Only pure black does; every other color is outside.
func isRegionColor(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r>>8 == 0) && (g>>8 == 0) && (b>>8 == 0)
}

// Returns the number of cells across and down that fit in the template image
// with the given cell size.
func TemplateDimensions(pic image.Image, cellWidth, cellHeight int) (int,
	int) {
	bounds := pic.Bounds().Canon()
	return (bounds.Dx() - templateMargin) / cellWidth,
		(bounds.Dy() - templateMargin) / cellHeight
}

// Sets the grid width and height, whichever of them is 0, to the number of
// cells that fit in the template image. Does nothing unless the cell size is
// positive.
func (c *Config) SizeToTemplate(pic image.Image) {
	if (pic == nil) || (c.CellWidth < 1) || (c.CellHeight < 1) {
		return
	}
	w, h := TemplateDimensions(pic, c.CellWidth, c.CellHeight)
	if c.GridWidth == 0 {
		c.GridWidth = w
	}
	if c.GridHeight == 0 {
		c.GridHeight = h
	}
}

// Returns an OccupancyFunc sampling a "template" image. Grid vertex (x, y) is
// looked up at pixel (cellWidth * (x + 1), cellHeight * (y + 1)) relative to
// the image's top left corner. The maze fills the black parts of the image;
// pixels of any other color, and positions beyond the image's bounds, are
// outside of the maze.
func NewTemplateOccupancy(pic image.Image, cellWidth,
	cellHeight int) OccupancyFunc {
	return func(x, y int) (bool, error) {
		if pic == nil {
			return false, fmt.Errorf("no template image")
		}
		bounds := pic.Bounds().Canon()
		pt := image.Pt(bounds.Min.X+cellWidth*(x+1),
			bounds.Min.Y+cellHeight*(y+1))
		if !pt.In(bounds) {
			return true, nil
		}
		return !isRegionColor(pic.At(pt.X, pt.Y)), nil
	}
}

// Builds a maze filling the black region of a template image. A grid width or
// height of 0 is computed from the size of the template and the config's cell
// size. See NewTemplateOccupancy for how the template is interpreted.
func NewGridMazeFromTemplate(templatePic image.Image, cfg Config,
	opts ...Option) (*GridMaze, error) {
	if templatePic == nil {
		return nil, fmt.Errorf("%w: no template image", ErrOccupancy)
	}
	cfg.SizeToTemplate(templatePic)
	return NewGridMaze(cfg, NewTemplateOccupancy(templatePic, cfg.CellWidth,
		cfg.CellHeight), opts...)
}
