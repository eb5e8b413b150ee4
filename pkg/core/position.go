package core

// Position identifies a single lattice cell. Positions are pure values: two
// equal positions refer to the same cell, and nothing in the simulation
// carries identity beyond the coordinate.
type Position struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// NeighborOffsets lists the eight Moore-neighborhood offsets around a cell.
var NeighborOffsets = [8][2]int32{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
