package life

import (
	"sparselife/pkg/core"
)

// countNeighbors recomputes per-cell neighbor counts and accumulates birth
// candidates for one generation. Counts are scattered: every live cell adds
// one to each of its resolved live neighbors and to the candidate tally of
// each resolved empty neighbor. The totals are identical to what each cell
// would find scanning its own neighborhood, at O(live cells) instead of
// O(grid area).
func countNeighbors(idx *SpatialIndex, bounds core.Bounds, births map[core.Position]uint8) {
	idx.Each(func(_ core.Position, cell *LiveCell) {
		cell.neighbors = 0
		cell.willSurvive = false
	})
	idx.Each(func(pos core.Position, _ *LiveCell) {
		for _, off := range core.NeighborOffsets {
			n, ok := bounds.Resolve(pos.X+off[0], pos.Y+off[1])
			if !ok {
				continue
			}
			if other, live := idx.Get(n); live {
				other.neighbors++
			} else {
				births[n]++
			}
		}
	})
}
