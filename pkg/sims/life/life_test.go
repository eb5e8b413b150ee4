package life

import (
	"slices"
	"testing"

	"sparselife/pkg/core"
)

func openConfig(minX, maxX, minY, maxY int32) Config {
	cfg := DefaultConfig()
	cfg.MinX, cfg.MaxX = minX, maxX
	cfg.MinY, cfg.MaxY = minY, maxY
	cfg.Wrap = false
	return cfg
}

func mustCreate(t *testing.T, e *Engine, cells ...core.Position) {
	t.Helper()
	for _, pos := range cells {
		if err := e.CreateCell(pos.X, pos.Y); err != nil {
			t.Fatalf("seeding cell (%d,%d): %v", pos.X, pos.Y, err)
		}
	}
}

func expectCells(t *testing.T, e *Engine, want []core.Position) {
	t.Helper()
	sorted := append([]core.Position(nil), want...)
	sortPositions(sorted)
	got := e.Cells()
	if !slices.Equal(got, sorted) {
		t.Fatalf("live set mismatch\n got: %v\nwant: %v", got, sorted)
	}
	if e.State().Population != uint32(len(want)) {
		t.Fatalf("population %d does not match live set size %d", e.State().Population, len(want))
	}
}

func TestBlinkerOscillation(t *testing.T) {
	eng := New(openConfig(-5, 5, -5, 5))
	mustCreate(t, eng,
		core.Position{X: -1, Y: 0},
		core.Position{X: 0, Y: 0},
		core.Position{X: 1, Y: 0},
	)

	eng.Step()
	expectCells(t, eng, []core.Position{
		{X: 0, Y: -1},
		{X: 0, Y: 0},
		{X: 0, Y: 1},
	})

	eng.Step()
	expectCells(t, eng, []core.Position{
		{X: -1, Y: 0},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	})

	if eng.State().Generation != 2 {
		t.Fatalf("two steps must commit two generations, got %d", eng.State().Generation)
	}
}

func TestLonelyCellDies(t *testing.T) {
	eng := New(openConfig(-5, 5, -5, 5))
	mustCreate(t, eng, core.Position{X: 0, Y: 0})

	eng.Step()

	if eng.State().Population != 0 {
		t.Fatalf("an isolated cell must die, population %d", eng.State().Population)
	}
	if eng.IsAlive(0, 0) {
		t.Fatal("cell at origin must be dead after one step")
	}
}

func TestTrominoBecomesBlock(t *testing.T) {
	eng := New(openConfig(-5, 5, -5, 5))
	mustCreate(t, eng,
		core.Position{X: 0, Y: 0},
		core.Position{X: 1, Y: 0},
		core.Position{X: 0, Y: 1},
	)

	eng.Step()

	// All three seeds have exactly two neighbors and survive; the empty
	// corner (1,1) sees all three and is born, completing the block.
	expectCells(t, eng, []core.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	})
}

func TestBirthFromThreeNeighbors(t *testing.T) {
	eng := New(openConfig(-5, 5, -5, 5))
	mustCreate(t, eng,
		core.Position{X: -1, Y: 0},
		core.Position{X: 1, Y: 0},
		core.Position{X: 0, Y: 1},
	)

	eng.Step()

	if !eng.IsAlive(0, 0) {
		t.Fatal("empty position surrounded by three live cells must be born")
	}
}

func TestBlockStability(t *testing.T) {
	eng := New(openConfig(-5, 5, -5, 5))
	block := []core.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	}
	mustCreate(t, eng, block...)

	for gen := 1; gen <= 5; gen++ {
		eng.Step()
		expectCells(t, eng, block)
		st := eng.State()
		if st.Births != 0 || st.Deaths != 0 {
			t.Fatalf("generation %d: block must commit no births or deaths, got %d/%d", gen, st.Births, st.Deaths)
		}
	}
}
