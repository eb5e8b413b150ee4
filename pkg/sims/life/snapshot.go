package life

import (
	"encoding/json"
	"fmt"
	"io"

	"sparselife/pkg/core"
)

// Snapshot is the minimal persisted form of a board: the generation counter,
// the bounds, and the ordered list of live positions. The last-step birth
// and death tallies are per-step reporting, not board state, and are not
// recorded; a restored engine reports zeros for them until its next Step.
type Snapshot struct {
	Generation uint64          `json:"generation"`
	Bounds     core.Bounds     `json:"bounds"`
	Cells      []core.Position `json:"cells"`
}

// Snapshot captures the current board as a value that Restore can rebuild
// identical state from.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Generation: e.state.Generation,
		Bounds:     e.bounds,
		Cells:      e.Cells(),
	}
}

// Restore builds a fresh engine from a snapshot by re-issuing CreateCell for
// every recorded position and setting the generation counter directly. A
// duplicate or out-of-bounds cell in the snapshot is reported to the caller.
// Only board state is restored: the engine gets the default seeding config,
// so pass an explicit seed to SeedSoup when reseeding a restored board.
func Restore(snap Snapshot) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.MinX = snap.Bounds.MinX
	cfg.MaxX = snap.Bounds.MaxX
	cfg.MinY = snap.Bounds.MinY
	cfg.MaxY = snap.Bounds.MaxY
	cfg.Wrap = snap.Bounds.Wrap
	eng := New(cfg)
	for _, pos := range snap.Cells {
		if err := eng.CreateCell(pos.X, pos.Y); err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
	}
	eng.state.Generation = snap.Generation
	return eng, nil
}

// Encode writes the snapshot as JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
