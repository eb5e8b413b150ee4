package core

import "errors"

// Recoverable simulation errors. Pattern seeding and manual editing probe
// positions routinely and are expected to check for these rather than crash.
var (
	// ErrOutOfBounds marks a coordinate rejected by the boundary policy.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrPositionOccupied marks a create on an already-live position.
	ErrPositionOccupied = errors.New("position already occupied")
	// ErrPositionEmpty marks a destroy on a position with no live cell.
	ErrPositionEmpty = errors.New("no live cell at position")
)
