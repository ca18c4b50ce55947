package maze

import (
	"fmt"
	"image"
	"sort"
)

// Receives snapshots of the solver's current path. The path slice is a copy
// and may be kept.
type ProgressObserver interface {
	OnProgress(path []image.Point)
}

// Adapts an ordinary function to the ProgressObserver interface.
type ProgressFunc func(path []image.Point)

func (f ProgressFunc) OnProgress(path []image.Point) {
	f(path)
}

// The order in which the solver tries to leave a cell.
var solverDirections = [4]int{dirLeft, dirRight, dirUp, dirDown}

// Holds the progress of a search: the path from the start to the cell being
// explored, and every cell known to be a dead end. Dead ends are never
// forgotten, so a SearchState reused for a second search still skips them.
type SearchState struct {
	path     []image.Point
	onPath   map[image.Point]struct{}
	deadEnds map[image.Point]struct{}
	// The total number of cells pushed onto the path so far.
	pushes int
}

// Returns an empty SearchState, with no path and no known dead ends.
func NewSearchState() *SearchState {
	return &SearchState{
		path:     make([]image.Point, 0, 64),
		onPath:   make(map[image.Point]struct{}),
		deadEnds: make(map[image.Point]struct{}),
	}
}

// Returns a copy of the current path, starting with the start cell.
func (s *SearchState) Path() []image.Point {
	toReturn := make([]image.Point, len(s.path))
	copy(toReturn, s.path)
	return toReturn
}

// Returns the length of the current path.
func (s *SearchState) Len() int {
	return len(s.path)
}

// Returns the number of cells pushed onto the path over the whole search,
// including the ones that were later backtracked.
func (s *SearchState) Pushes() int {
	return s.pushes
}

// Returns true if p is on the current path.
func (s *SearchState) OnPath(p image.Point) bool {
	_, ok := s.onPath[p]
	return ok
}

// Returns true if p has been found, or marked, to be unable to reach the
// target.
func (s *SearchState) IsDeadEnd(p image.Point) bool {
	_, ok := s.deadEnds[p]
	return ok
}

// Records p as unable to reach the target. The solver will never enter it.
func (s *SearchState) MarkDeadEnd(p image.Point) {
	s.deadEnds[p] = struct{}{}
}

// Returns every dead end, sorted by row and then by column.
func (s *SearchState) DeadEnds() []image.Point {
	toReturn := make([]image.Point, 0, len(s.deadEnds))
	for p := range s.deadEnds {
		toReturn = append(toReturn, p)
	}
	sort.Slice(toReturn, func(i, j int) bool {
		if toReturn[i].Y != toReturn[j].Y {
			return toReturn[i].Y < toReturn[j].Y
		}
		return toReturn[i].X < toReturn[j].X
	})
	return toReturn
}

func (s *SearchState) push(p image.Point) {
	s.path = append(s.path, p)
	s.onPath[p] = struct{}{}
	s.pushes++
}

func (s *SearchState) pop() {
	last := len(s.path) - 1
	delete(s.onPath, s.path[last])
	s.path = s.path[:last]
}

// Finds a path through a generated grid using depth-first search with
// backtracking. Cells are addressed by their top-left vertex.
type Solver struct {
	// The solver stops extending any path that reaches this many cells.
	MaxSteps int
	// The observer is notified whenever a push leaves the path with a
	// multiple of ProgressInterval cells, and once more when the search ends.
	// 0 disables the periodic notifications.
	ProgressInterval int
	// May be nil.
	Observer ProgressObserver
}

// Returns a Solver with the default limits and no observer.
func NewSolver() *Solver {
	return &Solver{
		MaxSteps:         DefaultMaxSteps,
		ProgressInterval: DefaultProgressInterval,
	}
}

func (s *Solver) notify(state *SearchState) {
	if s.Observer != nil {
		s.Observer.OnProgress(state.Path())
	}
}

// Tracks which of a cell's directions remain to be tried.
type searchFrame struct {
	cell image.Point
	// Bit n is set if direction solverDirections[n] was open, off the path
	// and not a known dead end when the cell was entered.
	eligible uint8
	next     int
}

// Returns the bit mask of solverDirections indices that the search may follow
// from p, given the current path and dead ends.
func eligibleDirections(g *Grid, p image.Point, state *SearchState) uint8 {
	var toReturn uint8
	for i, dir := range solverDirections {
		if !g.cellOpen(p, dir) {
			continue
		}
		dx, dy := dirOffset(dir)
		neighbor := p.Add(image.Pt(dx, dy))
		if state.OnPath(neighbor) || state.IsDeadEnd(neighbor) {
			continue
		}
		toReturn |= 1 << i
	}
	return toReturn
}

// Searches for a path from start to end, recording progress in state. Returns
// true if end was reached, in which case state's path runs from start to end.
// Otherwise state's path is empty, and every cell explored has been marked as
// a dead end. Returns an error wrapping ErrInvalidConfig, without searching,
// if start or end isn't a cell of g.
//
// Directions are tried in the order left, right, up, down. Which neighbors may
// be entered is decided once, when a cell is entered: a neighbor qualifies if
// no wall is in the way, it isn't already on the path, and it isn't a known
// dead end at that moment. This behaves like the obvious recursive search, but
// keeps its own stack so long paths can't exhaust the goroutine's stack.
func (s *Solver) Solve(g *Grid, start, end image.Point,
	state *SearchState) (bool, error) {
	if !g.ContainsCell(start) {
		return false, fmt.Errorf("%w: start %s is outside the %dx%d grid",
			ErrInvalidConfig, start, g.Width(), g.Height())
	}
	if !g.ContainsCell(end) {
		return false, fmt.Errorf("%w: end %s is outside the %dx%d grid",
			ErrInvalidConfig, end, g.Width(), g.Height())
	}
	frames := make([]searchFrame, 0, 64)
	enter := func(p image.Point) {
		state.push(p)
		if (s.ProgressInterval > 0) &&
			(len(state.path)%s.ProgressInterval == 0) {
			s.notify(state)
		}
		f := searchFrame{cell: p}
		// Cells at the end of an over-long path aren't expanded at all.
		if (p != end) && (len(state.path) < s.MaxSteps) {
			f.eligible = eligibleDirections(g, p, state)
		}
		frames = append(frames, f)
	}

	enter(start)
	for len(frames) != 0 {
		f := &(frames[len(frames)-1])
		if f.cell == end {
			s.notify(state)
			return true, nil
		}
		descended := false
		for f.next < len(solverDirections) {
			i := f.next
			f.next++
			if (f.eligible & (1 << i)) == 0 {
				continue
			}
			dx, dy := dirOffset(solverDirections[i])
			// f must not be used after this, enter may reallocate frames.
			enter(f.cell.Add(image.Pt(dx, dy)))
			descended = true
			break
		}
		if descended {
			continue
		}
		state.MarkDeadEnd(f.cell)
		state.pop()
		frames = frames[:len(frames)-1]
	}
	s.notify(state)
	return false, nil
}
