package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sparselife/pkg/sims/life"
)

// settleWindow is the number of trailing generations whose population must
// be identical before a soup counts as settled.
const settleWindow = 16

type scenario struct {
	seed    int64
	density float64
}

type censusResult struct {
	scenario
	seeded   int
	finalPop uint32
	peakPop  uint32
	peakGen  uint64
	settled  bool
}

func (r censusResult) String() string {
	return fmt.Sprintf("seed=%d density=%.2f seeded=%d final=%d peak=%d@%d settled=%v",
		r.seed, r.density, r.seeded, r.finalPop, r.peakPop, r.peakGen, r.settled)
}

func main() {
	var (
		width     = flag.Int("w", 128, "board width")
		height    = flag.Int("h", 128, "board height")
		steps     = flag.Int("steps", 512, "generations per scenario")
		seeds     = flag.Int("seeds", 16, "soup seeds per density")
		densities = flag.String("densities", "0.1,0.2,0.3,0.4,0.5", "comma separated soup densities")
		workers   = flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	)
	flag.Parse()

	ds, err := parseDensities(*densities)
	if err != nil {
		log.Fatalf("parse densities: %v", err)
	}

	var scenarios []scenario
	for _, d := range ds {
		for s := 0; s < *seeds; s++ {
			scenarios = append(scenarios, scenario{seed: int64(s + 1), density: d})
		}
	}

	fmt.Printf("Census of %d soups on %dx%d torus (%d workers, %d steps)\n",
		len(scenarios), *width, *height, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan censusResult)

	var g errgroup.Group
	for i := 0; i < *workers; i++ {
		g.Go(func() error {
			for sc := range jobs {
				results <- runCensus(sc, *width, *height, *steps)
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(results)
	}()
	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []censusResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].finalPop > all[j].finalPop })

	fmt.Printf("\nTop 10 surviving soups (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	fmt.Println("\nPer-density summary:")
	for _, d := range ds {
		var sum, settled, n int
		for _, res := range all {
			if res.density != d {
				continue
			}
			sum += int(res.finalPop)
			if res.settled {
				settled++
			}
			n++
		}
		if n == 0 {
			continue
		}
		fmt.Printf("  density %.2f: mean final population %.1f, settled %d/%d\n",
			d, float64(sum)/float64(n), settled, n)
	}
}

func runCensus(sc scenario, width, height, steps int) censusResult {
	cfg := life.DefaultConfig()
	cfg.MinX = int32(-width / 2)
	cfg.MaxX = cfg.MinX + int32(width) - 1
	cfg.MinY = int32(-height / 2)
	cfg.MaxY = cfg.MinY + int32(height) - 1
	cfg.Wrap = true
	eng := life.New(cfg)

	count := int(sc.density * float64(width) * float64(height))
	res := censusResult{scenario: sc, seeded: eng.SeedSoup(sc.seed, count)}

	history := make([]uint32, 0, settleWindow)
	for i := 0; i < steps; i++ {
		eng.Step()
		st := eng.State()
		if st.Population > res.peakPop {
			res.peakPop = st.Population
			res.peakGen = st.Generation
		}
		if len(history) == settleWindow {
			history = history[1:]
		}
		history = append(history, st.Population)
	}

	res.finalPop = eng.State().Population
	res.settled = len(history) == settleWindow
	for _, pop := range history {
		if pop != history[0] {
			res.settled = false
			break
		}
	}
	return res
}

func parseDensities(s string) ([]float64, error) {
	var ds []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if d <= 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside (0,1]", d)
		}
		ds = append(ds, d)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return ds, nil
}
