package life

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"min_x": "-10",
		"max_x": "10",
		"min_y": "-4",
		"max_y": "4",
		"wrap":  "false",
		"seed":  "77",
	})

	if cfg.MinX != -10 || cfg.MaxX != 10 || cfg.MinY != -4 || cfg.MaxY != 4 {
		t.Fatalf("bounds not applied: %+v", cfg)
	}
	if cfg.Wrap {
		t.Fatal("wrap=false not applied")
	}
	if cfg.Seed != 77 {
		t.Fatalf("seed not applied, got %d", cfg.Seed)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"min_x": "not-a-number",
		"wrap":  "maybe",
	})
	if cfg != def {
		t.Fatalf("unparseable values must leave defaults intact: %+v", cfg)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map must return defaults")
	}
}

func TestFromMapClampsInvertedBounds(t *testing.T) {
	cfg := FromMap(map[string]string{
		"min_x": "5",
		"max_x": "-5",
	})
	if cfg.MaxX < cfg.MinX {
		t.Fatalf("inverted x bounds must be clamped: %+v", cfg)
	}
}

func TestSeedSoupFallsBackToConfigSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 271828

	a := New(cfg)
	b := New(cfg)
	a.SeedSoup(0, 200)
	b.SeedSoup(cfg.Seed, 200)

	if len(a.Cells()) == 0 {
		t.Fatal("soup seeding placed no cells")
	}
	got := a.Cells()
	want := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("zero seed must reuse the config seed, placed %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatal("zero seed must reuse the config seed")
		}
	}
}
