package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sparselife/pkg/control"
	"sparselife/pkg/sims/life"
)

func main() {
	var (
		width      = flag.Int("w", 256, "board width")
		height     = flag.Int("h", 256, "board height")
		wrap       = flag.Bool("wrap", true, "toroidal edges")
		seed       = flag.Int64("seed", 1337, "soup seed")
		density    = flag.Float64("density", 0.25, "initial live-cell density for the soup")
		pattern    = flag.String("pattern", "", "seed a built-in pattern at the origin instead of a soup")
		steps      = flag.Int("steps", 1000, "generations to run")
		tps        = flag.Int("tps", 0, "target generations per second (0 runs unpaced)")
		report     = flag.Int("report", 100, "report interval in generations")
		loadPath   = flag.String("load", "", "restore a snapshot file before running")
		savePath   = flag.String("save", "", "write a snapshot file after the run")
		showParams = flag.Bool("params", false, "print the engine parameters before running")
	)
	flag.Parse()

	eng, err := buildEngine(*width, *height, *wrap, *seed, *density, *pattern, *loadPath)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	b := eng.Bounds()
	fmt.Printf("%s: %dx%d board, wrap=%v\n", eng.Name(), b.Width(), b.Height(), b.Wrap)

	if *showParams {
		printParameters(eng)
	}

	start := time.Now()
	if *tps > 0 {
		runPaced(eng, *tps, *steps, *report)
	} else {
		runUnpaced(eng, *steps, *report)
	}
	elapsed := time.Since(start)

	st := eng.State()
	fmt.Printf("done: generation %d, population %d (%s)\n",
		st.Generation, st.Population, elapsed.Round(time.Millisecond))

	if *savePath != "" {
		if err := saveSnapshot(eng, *savePath); err != nil {
			log.Fatalf("save snapshot: %v", err)
		}
		fmt.Printf("snapshot written to %s\n", *savePath)
	}
}

func buildEngine(width, height int, wrap bool, seed int64, density float64, pattern, loadPath string) (*life.Engine, error) {
	if loadPath != "" {
		f, err := os.Open(loadPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		snap, err := life.DecodeSnapshot(f)
		if err != nil {
			return nil, err
		}
		return life.Restore(snap)
	}

	cfg := life.DefaultConfig()
	cfg.MinX = int32(-width / 2)
	cfg.MaxX = cfg.MinX + int32(width) - 1
	cfg.MinY = int32(-height / 2)
	cfg.MaxY = cfg.MinY + int32(height) - 1
	cfg.Wrap = wrap
	cfg.Seed = seed
	eng := life.New(cfg)

	if pattern != "" {
		p, ok := life.PatternByName(pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (available: %s)",
				pattern, strings.Join(life.PatternNames(), ", "))
		}
		placed := p.Place(eng, 0, 0)
		fmt.Printf("seeded %s with %d cells\n", p.Name, placed)
		return eng, nil
	}

	count := int(density * float64(width) * float64(height))
	placed := eng.SeedSoup(seed, count)
	fmt.Printf("seeded soup with %d cells (density %.2f, seed %d)\n", placed, density, seed)
	return eng, nil
}

func runUnpaced(eng *life.Engine, steps, report int) {
	for i := 1; i <= steps; i++ {
		eng.Step()
		if report > 0 && i%report == 0 {
			printState(eng.State())
		}
	}
}

// runPaced drives the engine through the controller at the target rate and
// polls its committed state from this goroutine, the same split an external
// transport would use.
func runPaced(eng *life.Engine, tps, steps, report int) {
	ctrl := control.New(eng, tps)
	if err := ctrl.Start(); err != nil {
		log.Fatalf("start controller: %v", err)
	}
	defer ctrl.Stop()

	target := uint64(steps)
	reported := uint64(0)
	for {
		st := ctrl.State()
		if st.Generation >= target {
			return
		}
		if report > 0 && st.Generation >= reported+uint64(report) {
			printState(st)
			reported = st.Generation
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func printState(st life.GridState) {
	fmt.Printf("gen %6d  population %7d  births %5d  deaths %5d\n",
		st.Generation, st.Population, st.Births, st.Deaths)
}

func printParameters(eng *life.Engine) {
	for _, group := range eng.Parameters().Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %-12s %s\n", p.Key, p.Value)
		}
	}
}

func saveSnapshot(eng *life.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := eng.Snapshot().Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
