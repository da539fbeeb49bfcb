package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-table/internal/life"
	"life-table/internal/seed"
)

type scenario struct {
	name    string
	pattern string
	file    string
	opts    seed.Options
}

type scenarioResult struct {
	name        string
	initialPop  int
	finalPop    int
	peakPop     int
	generations int
	settledAt   int
	period      int
	bounds      life.Bounds
	hasBounds   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-survey: ")

	gens := flag.Int("gens", 1000, "maximum generations per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario runs")
	width := flag.Int("width", 160, "grid width")
	height := flag.Int("height", 120, "grid height")
	depth := flag.Int("depth", 3, "longest oscillator period detected")
	soups := flag.Int("random", 0, "number of random soups to add")
	density := flag.Float64("density", 0.15, "alive probability for random soups")
	rngSeed := flag.Int64("rng-seed", 42, "seed of the first random soup")
	flag.Parse()

	var scenarios []scenario
	builtin := seed.Names()
	for _, arg := range flag.Args() {
		if slices.Contains(builtin, arg) {
			scenarios = append(scenarios, scenario{name: arg, pattern: arg, opts: seed.DefaultOptions()})
			continue
		}
		scenarios = append(scenarios, scenario{name: arg, file: arg})
	}
	for i := 0; i < *soups; i++ {
		s := *rngSeed + int64(i)
		scenarios = append(scenarios, scenario{
			name:    fmt.Sprintf("random/%d", s),
			pattern: "random",
			opts:    seed.Options{Density: *density, Seed: s},
		})
	}
	if len(scenarios) == 0 {
		log.Fatal("nothing to survey: pass seed files, pattern names or -random N")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Surveying %d scenarios on %dx%d (%d workers, up to %d generations)\n",
		len(scenarios), *width, *height, *workers, *gens)

	start := time.Now()
	results := make([]scenarioResult, len(scenarios))
	jobs := make(chan int)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range scenarios {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < max(1, *workers); w++ {
		wk, err := newWorker(*width, *height, *depth)
		if err != nil {
			log.Fatal(err)
		}
		g.Go(func() error {
			for i := range jobs {
				res, err := wk.run(ctx, scenarios[i], *gens)
				if err != nil {
					return errors.Wrapf(err, "scenario %s", scenarios[i].name)
				}
				results[i] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		stop()
		log.Fatal(err)
	}

	slices.SortFunc(results, func(a, b scenarioResult) int {
		if a.settledAt != b.settledAt {
			return b.settledAt - a.settledAt
		}
		if a.name < b.name {
			return -1
		}
		if a.name > b.name {
			return 1
		}
		return 0
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range results {
		fmt.Println(formatResult(res))
	}
}

// worker owns one grid and history, cleared between scenarios.
type worker struct {
	grid    *life.Grid
	history *life.History
}

func newWorker(w, h, depth int) (*worker, error) {
	g, err := life.New(w, h)
	if err != nil {
		return nil, err
	}
	return &worker{grid: g, history: life.NewHistory(depth)}, nil
}

func runScenario(ctx context.Context, sc scenario, w, h, gens, depth int) (scenarioResult, error) {
	wk, err := newWorker(w, h, depth)
	if err != nil {
		return scenarioResult{}, err
	}
	return wk.run(ctx, sc, gens)
}

func (wk *worker) run(ctx context.Context, sc scenario, gens int) (scenarioResult, error) {
	g, history := wk.grid, wk.history
	g.Clear()
	history.Reset()

	var err error
	if sc.file != "" {
		err = seed.LoadFile(sc.file, g)
		if errors.Is(err, seed.ErrUnreadableSeedSource) {
			log.Printf("%v; using default pattern", err)
			err = nil
		}
	} else {
		err = seed.Named(sc.pattern, g, sc.opts)
	}
	if err != nil {
		return scenarioResult{}, err
	}
	g.Recenter()

	res := scenarioResult{name: sc.name, initialPop: g.Population(), settledAt: -1}
	res.peakPop = res.initialPop
	history.Record(g.Hash())

	for gen := 1; gen <= gens; gen++ {
		if err := ctx.Err(); err != nil {
			return scenarioResult{}, err
		}
		g.AdvanceGeneration()
		pop := g.Population()
		res.peakPop = max(res.peakPop, pop)
		res.generations = gen

		hash := g.Hash()
		if p := history.Period(hash); p > 0 {
			res.settledAt = gen - p
			res.period = p
			break
		}
		history.Record(hash)
	}
	res.finalPop = g.Population()
	res.bounds, res.hasBounds = g.Bounds()
	return res, nil
}

func formatResult(res scenarioResult) string {
	state := "still running"
	switch {
	case res.settledAt >= 0 && res.finalPop == 0:
		state = fmt.Sprintf("extinct at gen %d", res.settledAt)
	case res.settledAt >= 0 && res.period == 1:
		state = fmt.Sprintf("still life from gen %d", res.settledAt)
	case res.settledAt >= 0:
		state = fmt.Sprintf("period %d from gen %d", res.period, res.settledAt)
	}
	box := "-"
	if res.hasBounds {
		box = fmt.Sprintf("%dx%d", res.bounds.Width(), res.bounds.Height())
	}
	return fmt.Sprintf("%-24s pop %5d -> %5d (peak %5d) box %-9s %s after %d gens",
		res.name, res.initialPop, res.finalPop, res.peakPop, box, state, res.generations)
}
