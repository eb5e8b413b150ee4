package life

import (
	"cmp"
	"fmt"
	"slices"

	"sparselife/pkg/core"
)

// GridState aggregates simulation metadata for the last committed generation.
type GridState struct {
	Generation uint64
	Population uint32
	Births     uint32
	Deaths     uint32
	Bounds     core.Bounds
}

// Engine is the sparse Game of Life simulation: live cells are the only
// entities stored, so memory scales with the population rather than the
// board area. Engine itself is not safe for concurrent use; wrap it in a
// control.Controller when multiple goroutines need access.
type Engine struct {
	cfg    Config
	bounds core.Bounds
	index  *SpatialIndex
	state  GridState

	// birth-candidate accumulator, cleared each step
	births map[core.Position]uint8
}

// New returns an engine configured from the provided options.
func New(cfg Config) *Engine {
	bounds := core.Bounds{
		MinX: cfg.MinX,
		MaxX: cfg.MaxX,
		MinY: cfg.MinY,
		MaxY: cfg.MaxY,
		Wrap: cfg.Wrap,
	}
	return &Engine{
		cfg:    cfg,
		bounds: bounds,
		index:  NewSpatialIndex(),
		state:  GridState{Bounds: bounds},
		births: make(map[core.Position]uint8),
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Bounds reports the board extent and edge behavior.
func (e *Engine) Bounds() core.Bounds { return e.bounds }

// State returns a copy of the current simulation metadata.
func (e *Engine) State() GridState { return e.state }

// CreateCell brings a cell to life at (x, y). The coordinate is resolved
// through the boundary policy first, so on wrapped boards an out-of-range
// coordinate lands on its toroidal image. Occupied and out-of-bounds
// positions fail without changing the board.
func (e *Engine) CreateCell(x, y int32) error {
	pos, ok := e.bounds.Resolve(x, y)
	if !ok {
		return fmt.Errorf("create cell (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	if _, err := e.index.Insert(pos); err != nil {
		return fmt.Errorf("create cell (%d,%d): %w", x, y, err)
	}
	e.state.Population = e.index.Size()
	return nil
}

// DestroyCell kills the cell at (x, y), failing if none is present.
func (e *Engine) DestroyCell(x, y int32) error {
	pos, ok := e.bounds.Resolve(x, y)
	if !ok {
		return fmt.Errorf("destroy cell (%d,%d): %w", x, y, core.ErrOutOfBounds)
	}
	if err := e.index.Remove(pos); err != nil {
		return fmt.Errorf("destroy cell (%d,%d): %w", x, y, err)
	}
	e.state.Population = e.index.Size()
	return nil
}

// IsAlive reports whether a live cell occupies (x, y).
func (e *Engine) IsAlive(x, y int32) bool {
	pos, ok := e.bounds.Resolve(x, y)
	if !ok {
		return false
	}
	return e.index.Contains(pos)
}

// NeighborCountAt computes the live-neighbor count of (x, y) on demand by
// scanning the eight neighbor positions. It is independent of the scratch
// counts cached during a step.
func (e *Engine) NeighborCountAt(x, y int32) uint8 {
	pos, ok := e.bounds.Resolve(x, y)
	if !ok {
		return 0
	}
	var n uint8
	for _, off := range core.NeighborOffsets {
		np, ok := e.bounds.Resolve(pos.X+off[0], pos.Y+off[1])
		if ok && e.index.Contains(np) {
			n++
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (e *Engine) Step() {
	clear(e.births)
	countNeighbors(e.index, e.bounds, e.births)
	applyLifecycle(e.index, e.births, &e.state)
}

// Clear kills every cell without touching the generation counter.
func (e *Engine) Clear() {
	e.index.Clear()
	e.state.Population = 0
	e.state.Births = 0
	e.state.Deaths = 0
}

// Reset empties the board and rewinds the generation counter to zero.
func (e *Engine) Reset() {
	e.Clear()
	e.state.Generation = 0
}

// CellsInRegion returns the positions of live cells inside the inclusive
// rectangle, ordered by row then column. The slice is a snapshot taken at
// call time.
func (e *Engine) CellsInRegion(minX, maxX, minY, maxY int32) []core.Position {
	var cells []core.Position
	e.index.Each(func(pos core.Position, _ *LiveCell) {
		if pos.X >= minX && pos.X <= maxX && pos.Y >= minY && pos.Y <= maxY {
			cells = append(cells, pos)
		}
	})
	sortPositions(cells)
	return cells
}

// Cells returns every live position, ordered by row then column.
func (e *Engine) Cells() []core.Position {
	return e.CellsInRegion(e.bounds.MinX, e.bounds.MaxX, e.bounds.MinY, e.bounds.MaxY)
}

// SeedSoup scatters up to count random live cells inside the bounds using a
// deterministic generator. A zero seed falls back to the configured seed.
// Collisions with already-placed cells are skipped, so the resulting
// population can fall slightly short of count. It returns the number of
// cells created.
func (e *Engine) SeedSoup(seed int64, count int) int {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	rng := core.NewRNG(effective)
	placed := 0
	for i := 0; i < count; i++ {
		p := rng.PositionIn(e.bounds)
		if err := e.CreateCell(p.X, p.Y); err == nil {
			placed++
		}
	}
	return placed
}

func sortPositions(cells []core.Position) {
	slices.SortFunc(cells, func(a, b core.Position) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
