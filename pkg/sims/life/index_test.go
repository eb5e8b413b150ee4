package life

import (
	"errors"
	"testing"

	"sparselife/pkg/core"
)

func TestSpatialIndexInsertRemove(t *testing.T) {
	idx := NewSpatialIndex()
	pos := core.Position{X: 2, Y: -3}

	cell, err := idx.Insert(pos)
	if err != nil {
		t.Fatalf("insert into empty index: %v", err)
	}
	if cell.Position() != pos {
		t.Fatalf("cell position %v does not match insert position %v", cell.Position(), pos)
	}
	if !idx.Contains(pos) || idx.Size() != 1 {
		t.Fatal("index must contain the inserted cell")
	}

	if _, err := idx.Insert(pos); !errors.Is(err, core.ErrPositionOccupied) {
		t.Fatalf("double insert must fail with ErrPositionOccupied, got %v", err)
	}

	if err := idx.Remove(pos); err != nil {
		t.Fatalf("remove of present cell: %v", err)
	}
	if err := idx.Remove(pos); !errors.Is(err, core.ErrPositionEmpty) {
		t.Fatalf("remove of absent cell must fail with ErrPositionEmpty, got %v", err)
	}
	if idx.Size() != 0 {
		t.Fatalf("index must be empty after removal, size %d", idx.Size())
	}
}

func TestSpatialIndexEachAndClear(t *testing.T) {
	idx := NewSpatialIndex()
	want := map[core.Position]bool{
		{X: 0, Y: 0}:  true,
		{X: 1, Y: 0}:  true,
		{X: -4, Y: 7}: true,
	}
	for pos := range want {
		if _, err := idx.Insert(pos); err != nil {
			t.Fatalf("insert %v: %v", pos, err)
		}
	}

	seen := 0
	idx.Each(func(pos core.Position, cell *LiveCell) {
		if !want[pos] {
			t.Fatalf("unexpected cell at %v", pos)
		}
		if cell.Position() != pos {
			t.Fatalf("cell at key %v reports position %v", pos, cell.Position())
		}
		seen++
	})
	if seen != len(want) {
		t.Fatalf("Each visited %d cells, want %d", seen, len(want))
	}

	idx.Clear()
	if idx.Size() != 0 {
		t.Fatalf("clear must empty the index, size %d", idx.Size())
	}
}
