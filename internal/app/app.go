// Package app wires a seeded grid to a display backend and runs it.
package app

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"life-table/internal/core"
	"life-table/internal/life"
	"life-table/internal/seed"
)

// BackendAuto selects the preferred available backend.
const BackendAuto = "auto"

// SelectBackend returns the backend called name, or the preferred available
// one for BackendAuto.
func SelectBackend(name string) (core.Backend, error) {
	if name == "" || name == BackendAuto {
		b, ok := core.PreferredBackend()
		if !ok {
			return core.Backend{}, errors.New("no display backend available")
		}
		return b, nil
	}
	b, ok := core.LookupBackend(name)
	if !ok {
		if name == pixelBackend {
			return core.Backend{}, errors.New(pixelHint)
		}
		return core.Backend{}, errors.Errorf("unknown backend %q", name)
	}
	if !b.Usable() {
		return core.Backend{}, errors.Errorf("backend %q is not available here", name)
	}
	return b, nil
}

// Setup builds the grid for a surface of the given size, seeds it, recenters
// it and advances it to the first generation.
func Setup(cfg *Config, size core.Size) (*life.Grid, error) {
	w, h := size.W, size.H
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	g, err := life.New(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "[app.Setup]")
	}
	if err := seedGrid(cfg, g); err != nil {
		return nil, err
	}
	if !cfg.NoRecenter {
		if s := g.Recenter(); s != (life.Shift{}) {
			log.Printf("recentered seed by %d columns, %d rows", s.Columns, s.Rows)
		}
	}
	g.AdvanceGeneration()
	return g, nil
}

func seedGrid(cfg *Config, g *life.Grid) error {
	if cfg.SeedFile == "" {
		return seed.Named(cfg.Pattern, g, seed.Options{Density: cfg.Density, Seed: cfg.RNGSeed})
	}
	err := seed.LoadFile(cfg.SeedFile, g)
	if errors.Is(err, seed.ErrUnreadableSeedSource) {
		log.Printf("%v; using default pattern", err)
		return nil
	}
	return err
}

// Run opens the configured backend, prepares the grid and runs it until ctx
// is done or the user quits.
func Run(ctx context.Context, cfg *Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b, err := SelectBackend(cfg.Backend)
	if err != nil {
		return err
	}
	surface, err := b.Open(cfg.Options())
	if err != nil {
		return errors.Wrapf(err, "opening %s backend", b.Name)
	}
	defer func() {
		if cerr := surface.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	g, err := Setup(cfg, surface.Size())
	if err != nil {
		return err
	}
	log.Printf("%s backend, %dx%d grid, population %d", b.Name, g.Width(), g.Height(), g.Population())
	return surface.Run(ctx, g, cfg.Tick)
}
