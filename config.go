package maze

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/multierr"
)

// The default bound on the length of the path explored by the solver.
const DefaultMaxSteps = 6420

// The default path length multiple at which progress is reported.
const DefaultProgressInterval = 50

// Returned (wrapped) for any invalid dimension, point, or limit.
var ErrInvalidConfig = errors.New("invalid maze configuration")

// Returned (wrapped) when the occupancy predicate can't be evaluated.
var ErrOccupancy = errors.New("occupancy mask unavailable")

// Holds the parameters needed to generate and solve a maze.
type Config struct {
	// The size of a single cell, in pixels. Only used for rendering and for
	// sampling template images.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	// The number of cells across and down.
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	// The cells at which the solver starts and stops.
	Start image.Point `yaml:"start"`
	End   image.Point `yaml:"end"`
	// If not positive, a seed will be picked based on the current time.
	RandomSeed int64 `yaml:"random_seed"`
	// The longest path the solver will explore.
	MaxSteps int `yaml:"max_steps"`
	// Progress is reported whenever a push leaves the path with a multiple
	// of this many cells. 0 disables periodic notifications.
	ProgressInterval int `yaml:"progress_interval"`
}

// Returns a Config with the default cell size and solver limits. The grid
// dimensions and end points still need to be set.
func DefaultConfig() Config {
	return Config{
		CellWidth:        2,
		CellHeight:       2,
		MaxSteps:         DefaultMaxSteps,
		ProgressInterval: DefaultProgressInterval,
	}
}

// Returns nil if the config can be used to build a maze. Otherwise, returns an
// error wrapping ErrInvalidConfig and describing every problem found.
func (c *Config) Validate() error {
	var errs error
	if (c.CellWidth < 1) || (c.CellHeight < 1) {
		errs = multierr.Append(errs, fmt.Errorf("cell size must be at least "+
			"1x1, got %dx%d", c.CellWidth, c.CellHeight))
	}
	dimsOK := true
	if (c.GridWidth < 1) || (c.GridHeight < 1) {
		dimsOK = false
		errs = multierr.Append(errs, fmt.Errorf("grid size must be at least "+
			"1x1, got %dx%d", c.GridWidth, c.GridHeight))
	}
	if dimsOK {
		bounds := image.Rect(0, 0, c.GridWidth, c.GridHeight)
		if !c.Start.In(bounds) {
			errs = multierr.Append(errs, fmt.Errorf("start %s is outside the "+
				"%dx%d grid", c.Start, c.GridWidth, c.GridHeight))
		}
		if !c.End.In(bounds) {
			errs = multierr.Append(errs, fmt.Errorf("end %s is outside the "+
				"%dx%d grid", c.End, c.GridWidth, c.GridHeight))
		}
	}
	if c.MaxSteps < 0 {
		errs = multierr.Append(errs, fmt.Errorf("max steps can't be "+
			"negative, got %d", c.MaxSteps))
	}
	if c.ProgressInterval < 0 {
		errs = multierr.Append(errs, fmt.Errorf("progress interval can't be "+
			"negative, got %d", c.ProgressInterval))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}
	return nil
}
