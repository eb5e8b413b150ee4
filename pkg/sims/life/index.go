package life

import (
	"sparselife/pkg/core"
)

// LiveCell is the entry stored in the spatial index for each live position.
// neighbors and willSurvive are scratch state, valid only inside one Step.
type LiveCell struct {
	pos         core.Position
	neighbors   uint8
	willSurvive bool
}

// Position returns the cell's lattice coordinate.
func (c *LiveCell) Position() core.Position { return c.pos }

// SpatialIndex holds the authoritative set of live cells keyed by position.
// A position absent from the index is a dead cell.
type SpatialIndex struct {
	cells map[core.Position]*LiveCell
}

// NewSpatialIndex returns an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{cells: make(map[core.Position]*LiveCell)}
}

// Contains reports whether a live cell occupies pos.
func (s *SpatialIndex) Contains(pos core.Position) bool {
	_, ok := s.cells[pos]
	return ok
}

// Get returns the live cell at pos, if any.
func (s *SpatialIndex) Get(pos core.Position) (*LiveCell, bool) {
	c, ok := s.cells[pos]
	return c, ok
}

// Insert creates a live cell at pos with zeroed scratch state. It fails with
// core.ErrPositionOccupied if a cell is already present.
func (s *SpatialIndex) Insert(pos core.Position) (*LiveCell, error) {
	if _, ok := s.cells[pos]; ok {
		return nil, core.ErrPositionOccupied
	}
	c := &LiveCell{pos: pos}
	s.cells[pos] = c
	return c, nil
}

// Remove deletes the live cell at pos, failing with core.ErrPositionEmpty if
// no cell is present.
func (s *SpatialIndex) Remove(pos core.Position) error {
	if _, ok := s.cells[pos]; !ok {
		return core.ErrPositionEmpty
	}
	delete(s.cells, pos)
	return nil
}

// Size returns the live-cell count.
func (s *SpatialIndex) Size() uint32 { return uint32(len(s.cells)) }

// Each visits every live cell. The callback must not mutate the index.
func (s *SpatialIndex) Each(fn func(core.Position, *LiveCell)) {
	for pos, cell := range s.cells {
		fn(pos, cell)
	}
}

// Clear removes every live cell.
func (s *SpatialIndex) Clear() {
	clear(s.cells)
}
