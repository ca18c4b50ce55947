// This defines a library for generating 2D mazes that fill an arbitrary
// region, and for finding a path through them. Mazes satisfy the Maze
// interface, which includes go's image.Image interface.
package maze

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
)

// All mazes returned by this library will support this interface. It provides
// the Image interface so the mazes can be saved to files.
type Maze interface {
	image.Image
	RegenerateFromSeed(seed int64) error
	ShowSolution(show bool) error
	// Returns information about the maze, such as the random seed that was
	// used and where to draw the start and end markers.
	GetInfo() MazeInfo
}

// Returned by GetInfo.
type MazeInfo struct {
	// A human-readable summary, for debugging.
	DebugInfo string
	// The random seed used for the last generation.
	Seed int64
	// The time the last generation took, in seconds.
	GenerationTime float64
	Stats          GridStats
	// True if the last search reached the end cell.
	Solved bool
	// The length of the path found by the last search. 0 if the maze hasn't
	// been solved, or if no path was found.
	PathLength int
	// The centers of the start and end cells, in pixels.
	StartPoint image.Point
	EndPoint   image.Point
	// Angles in degrees, counterclockwise from pointing right, for arrows
	// leading into the start cell and out of the end cell from the nearest
	// outer edge of the grid.
	StartAngle float32
	EndAngle   float32
}

// Configures optional GridMaze behavior.
type Option func(*GridMaze)

// Sets the logger the maze reports to. Logging is discarded by default.
func WithLogr(log logr.Logger) Option {
	return func(m *GridMaze) {
		m.log = log
	}
}

// Satisfies the Maze interface. Holds a Grid generated within a (possibly
// irregular) region, and the results of the last search through it. Create
// using NewGridMaze or NewGridMazeFromTemplate.
type GridMaze struct {
	cfg  Config
	grid *Grid
	// The occupancy mask, sampled once when the maze was created. nil if the
	// maze fills the whole grid.
	mask []bool
	// The seed that was used for the last generation.
	randomSeed int64
	// The time required for the last generation, in seconds.
	generationTime float64
	// nil until Solve is called.
	search *SearchState
	solved bool
	// Controls rendering; see ShowSolution and ShowDeadEnds.
	showSolution bool
	showDeadEnds bool
	cells        []renderCell
	log          logr.Logger
}

// Generates a maze from the given config, restricted to the vertices for which
// outside returns false. outside may be nil, in which case the maze fills the
// entire grid. outside is called exactly once per grid vertex; if it fails,
// or the config is invalid, no maze is generated.
func NewGridMaze(cfg Config, outside OccupancyFunc, opts ...Option) (*GridMaze,
	error) {
	e := cfg.Validate()
	if e != nil {
		return nil, e
	}
	mask, e := sampleOccupancy(cfg.GridWidth, cfg.GridHeight, outside)
	if e != nil {
		return nil, e
	}
	toReturn := &GridMaze{
		cfg:  cfg,
		mask: mask,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(toReturn)
	}
	e = toReturn.RegenerateFromSeed(cfg.RandomSeed)
	if e != nil {
		return nil, fmt.Errorf("Error generating maze: %w", e)
	}
	return toReturn, nil
}

// Discards the current maze and generates a new one within the same region.
// If the seed is not positive, a new seed will be selected based on the
// current time in nanoseconds. Any previous search results are cleared.
func (m *GridMaze) RegenerateFromSeed(seed int64) error {
	if seed <= 0 {
		seed = time.Now().UnixNano()
		m.log.Info("Picked a time-based random seed", "seed", seed)
	}
	grid, e := NewGrid(m.cfg.GridWidth, m.cfg.GridHeight)
	if e != nil {
		return fmt.Errorf("Error initializing maze state: %w", e)
	}
	grid.applyMask(m.mask)

	m.grid = grid
	m.randomSeed = seed
	rng := rand.New(rand.NewSource(seed))
	startTime := time.Now()
	Generate(grid, rng)
	m.generationTime = time.Since(startTime).Seconds()

	m.search = nil
	m.solved = false
	m.updateCells()
	m.log.V(1).Info("Generated maze", "width", grid.Width(), "height",
		grid.Height(), "seed", seed, "seconds", m.generationTime)
	return nil
}

// Returns the maze's underlying grid. It must not be modified.
func (m *GridMaze) Grid() *Grid {
	return m.grid
}

// Returns the random seed used for the last generation.
func (m *GridMaze) Seed() int64 {
	return m.randomSeed
}

// Returns the state of the last search, or nil if Solve hasn't been called
// since the maze was generated.
func (m *GridMaze) SearchState() *SearchState {
	return m.search
}

// Searches for a path from the configured start cell to the end cell. Returns
// true if one was found within the configured step limit. observer may be
// nil.
func (m *GridMaze) Solve(observer ProgressObserver) (bool, error) {
	progress := ProgressFunc(func(path []image.Point) {
		m.log.V(2).Info("Solver progress", "pathLength", len(path))
		if observer != nil {
			observer.OnProgress(path)
		}
	})
	solver := &Solver{
		MaxSteps:         m.cfg.MaxSteps,
		ProgressInterval: m.cfg.ProgressInterval,
		Observer:         progress,
	}
	state := NewSearchState()
	found, e := solver.Solve(m.grid, m.cfg.Start, m.cfg.End, state)
	if e != nil {
		return false, fmt.Errorf("Error solving maze: %w", e)
	}
	m.search = state
	m.solved = found
	m.updateCells()
	m.log.Info("Finished searching maze", "found", found, "pathLength",
		state.Len(), "deadEnds", len(state.deadEnds), "pushes",
		state.Pushes())
	return found, nil
}

// Controls whether the path found by Solve is drawn. The maze must have been
// solved before the path can be shown.
func (m *GridMaze) ShowSolution(show bool) error {
	if show && (m.search == nil) {
		return fmt.Errorf("the maze hasn't been solved")
	}
	m.showSolution = show
	m.updateCells()
	return nil
}

// Controls whether the dead ends found by Solve are drawn.
func (m *GridMaze) ShowDeadEnds(show bool) {
	m.showDeadEnds = show
	m.updateCells()
}

// Returns the direction of the grid edge closest to the given cell.
func nearestEdge(p image.Point, width, height int) int {
	toReturn := dirLeft
	best := p.X
	if p.Y < best {
		toReturn = dirUp
		best = p.Y
	}
	if (width - 1 - p.X) < best {
		toReturn = dirRight
		best = width - 1 - p.X
	}
	if (height - 1 - p.Y) < best {
		toReturn = dirDown
	}
	return toReturn
}

// Angles for arrows pointing in from, or out to, each edge. Indexed by
// direction.
var (
	inwardAngles  = [4]float32{0, 270, 180, 90}
	outwardAngles = [4]float32{180, 90, 0, 270}
)

// Returns the center of the given cell, in pixels.
func (m *GridMaze) cellCenter(p image.Point) image.Point {
	w := m.cfg.CellWidth
	h := m.cfg.CellHeight
	return image.Pt(w*(p.X+1)+w/2, h*(p.Y+1)+h/2)
}

func (m *GridMaze) GetInfo() MazeInfo {
	stats := m.grid.Stats()
	pathLength := 0
	if m.solved {
		pathLength = m.search.Len()
	}
	start := m.cfg.Start
	end := m.cfg.End
	return MazeInfo{
		DebugInfo: fmt.Sprintf("%dx%d shaped maze with random seed %d, "+
			"generated in %.03f seconds (%s)", m.grid.Width(),
			m.grid.Height(), m.randomSeed, m.generationTime, stats),
		Seed:           m.randomSeed,
		GenerationTime: m.generationTime,
		Stats:          stats,
		Solved:         m.solved,
		PathLength:     pathLength,
		StartPoint:     m.cellCenter(start),
		EndPoint:       m.cellCenter(end),
		StartAngle: inwardAngles[nearestEdge(start, m.grid.Width(),
			m.grid.Height())],
		EndAngle: outwardAngles[nearestEdge(end, m.grid.Width(),
			m.grid.Height())],
	}
}
