package core

// NextState applies the standard B3/S23 rule: a live cell survives with two
// or three live neighbors, a dead cell is born with exactly three.
func NextState(alive bool, neighbors uint8) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
