package seed

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"life-table/internal/core"
)

const (
	defaultLineLength = 20
	defaultLineRow    = 50
)

// Options tunes the generated patterns.
type Options struct {
	// Density is the chance of each cell being alive in the random pattern.
	Density float64
	// Seed makes the random pattern reproducible.
	Seed int64
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Density: 0.15, Seed: 42}
}

var builtins = map[string]string{
	"blinker": "OOO",
	"block":   "OO\nOO",
	"glider":  ".O.\n..O\nOOO",
	"r-pentomino": `! The R-pentomino, stable after 1103 generations.
.OO
OO.
.O.`,
	"gosper-glider-gun": `! Gosper glider gun
........................O
......................O.O
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO
OO........O...O.OO....O.O
..........O.....O.......O
...........O...O
............OO`,
}

// Names lists every built-in pattern name.
func Names() []string {
	names := []string{"default", "random"}
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named applies the built-in pattern called name to g.
func Named(name string, g Target, opts Options) error {
	switch name {
	case "", "default":
		return Default(g)
	case "random":
		return Random(g, opts)
	}
	text, ok := builtins[name]
	if !ok {
		return errors.Errorf("[seed.Named] unknown pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return errors.Wrapf(Load(strings.NewReader(text), g), "[seed.Named] %s", name)
}

// Default draws a horizontal line of twenty cells on row fifty, shortened and
// moved up as needed to fit small grids.
func Default(g Target) error {
	row := min(defaultLineRow, g.Height()-1)
	for x := 0; x < min(defaultLineLength, g.Width()); x++ {
		if err := g.SetAlive(x, row); err != nil {
			return errors.Wrap(err, "[seed.Default]")
		}
	}
	return nil
}

// Random marks each cell alive with probability opts.Density.
func Random(g Target, opts Options) error {
	rng := core.NewRNG(opts.Seed)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !rng.Chance(opts.Density) {
				continue
			}
			if err := g.SetAlive(x, y); err != nil {
				return errors.Wrap(err, "[seed.Random]")
			}
		}
	}
	return nil
}
