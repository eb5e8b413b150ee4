package core

// Bounds describes the inclusive extent of the lattice and its edge behavior.
type Bounds struct {
	MinX int32 `json:"min_x"`
	MaxX int32 `json:"max_x"`
	MinY int32 `json:"min_y"`
	MaxY int32 `json:"max_y"`
	Wrap bool  `json:"wrap"`
}

// Width returns the number of columns covered by the bounds.
func (b Bounds) Width() int32 { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered by the bounds.
func (b Bounds) Height() int32 { return b.MaxY - b.MinY + 1 }

// Contains reports whether (x, y) lies inside the extent, ignoring wrap.
func (b Bounds) Contains(x, y int32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Resolve maps a candidate coordinate onto the lattice. Without wrapping,
// coordinates outside the extent are rejected. With wrapping, each axis
// independently re-enters from the opposite edge; the arithmetic holds for
// any overshoot magnitude, not just the single-step offsets the stepper uses.
func (b Bounds) Resolve(x, y int32) (Position, bool) {
	if !b.Wrap {
		if !b.Contains(x, y) {
			return Position{}, false
		}
		return Position{X: x, Y: y}, true
	}
	return Position{
		X: wrap(x, b.MinX, b.Width()),
		Y: wrap(y, b.MinY, b.Height()),
	}, true
}

func wrap(v, min, span int32) int32 {
	off := (v - min) % span
	if off < 0 {
		off += span
	}
	return min + off
}
