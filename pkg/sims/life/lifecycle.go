package life

import (
	"fmt"

	"sparselife/pkg/core"
)

// applyLifecycle commits one generation transition: rule evaluation over the
// live set and the birth candidates, then deaths removed before births are
// inserted. A birth landing on a dying cell's position is therefore a fresh
// entity, not a survivor. Insert and remove failures here mean the index and
// the evaluation disagree, which is a bug, so they panic.
func applyLifecycle(idx *SpatialIndex, births map[core.Position]uint8, st *GridState) {
	var deaths []core.Position
	idx.Each(func(pos core.Position, cell *LiveCell) {
		cell.willSurvive = core.NextState(true, cell.neighbors)
		if !cell.willSurvive {
			deaths = append(deaths, pos)
		}
	})

	var born []core.Position
	for pos, n := range births {
		if core.NextState(false, n) {
			born = append(born, pos)
		}
	}

	for _, pos := range deaths {
		if err := idx.Remove(pos); err != nil {
			panic(fmt.Sprintf("lifecycle: removing dead cell at (%d,%d): %v", pos.X, pos.Y, err))
		}
	}
	for _, pos := range born {
		if _, err := idx.Insert(pos); err != nil {
			panic(fmt.Sprintf("lifecycle: inserting born cell at (%d,%d): %v", pos.X, pos.Y, err))
		}
	}

	st.Births = uint32(len(born))
	st.Deaths = uint32(len(deaths))
	st.Population = idx.Size()
	st.Generation++
}
