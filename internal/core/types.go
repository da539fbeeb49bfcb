package core

import (
	"context"
	"sort"
	"time"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the read side of a simulation that a surface needs to draw it
// and the single mutation it may trigger.
type Sim interface {
	Name() string
	Size() Size
	Step()
	// Cells returns one display value per cell in row-major order. Callers
	// must not modify the slice.
	Cells() []uint8
	Generation() int
	Population() int
}

// Options carries the settings a backend needs to open its surface.
type Options struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	Scale        int
	TPS          int
	LogFile      string
}

// Surface is an opened display a Sim can be run on.
type Surface interface {
	// Size reports how many cells the surface can show.
	Size() Size
	// Run steps sim once per tick and redraws it until ctx is done or the
	// user quits.
	Run(ctx context.Context, sim Sim, tick time.Duration) error
	Close() error
}

// Backend describes one way of displaying a simulation.
type Backend struct {
	Name     string
	Priority int
	// Available reports whether the backend can run in this process. A nil
	// Available means always.
	Available func() bool
	Open      func(opts Options) (Surface, error)
}

// Usable reports whether the backend can run in this process.
func (b Backend) Usable() bool { return b.Available == nil || b.Available() }

var backends = map[string]Backend{}

// RegisterBackend adds a backend under its name.
func RegisterBackend(b Backend) {
	if b.Name == "" || b.Open == nil {
		return
	}
	backends[b.Name] = b
}

// LookupBackend returns the backend registered under name.
func LookupBackend(name string) (Backend, bool) {
	b, ok := backends[name]
	return b, ok
}

// Backends returns the registered backends ordered by descending priority.
func Backends() []Backend {
	out := make([]Backend, 0, len(backends))
	for _, b := range backends {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PreferredBackend returns the highest-priority backend that is available.
func PreferredBackend() (Backend, bool) {
	for _, b := range Backends() {
		if b.Usable() {
			return b, true
		}
	}
	return Backend{}, false
}
