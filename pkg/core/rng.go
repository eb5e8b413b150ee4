package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// PositionIn returns a uniformly random position inside the bounds.
func (r *RNG) PositionIn(b Bounds) Position {
	return Position{
		X: b.MinX + int32(r.r.IntN(int(b.Width()))),
		Y: b.MinY + int32(r.r.IntN(int(b.Height()))),
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
