package app

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-table/internal/core"
)

type countingSim struct {
	steps atomic.Int32
	cells []uint8
}

func (c *countingSim) Name() string    { return "counting" }
func (c *countingSim) Size() core.Size { return core.Size{W: 3, H: 1} }
func (c *countingSim) Step()           { c.steps.Add(1) }
func (c *countingSim) Cells() []uint8  { return c.cells }
func (c *countingSim) Generation() int { return int(c.steps.Load()) }
func (c *countingSim) Population() int { return 0 }

func newSimulatedSurface(t *testing.T) (*terminalSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(12, 4)
	s, err := newTerminalSurface(screen, "")
	if err != nil {
		t.Fatalf("newTerminalSurface: %v", err)
	}
	return s, screen
}

func runAsync(s *terminalSurface, ctx context.Context, sim core.Sim, tick time.Duration) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, sim, tick) }()
	return done
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestTerminalSurfaceSize(t *testing.T) {
	s, _ := newSimulatedSurface(t)
	defer s.Close()
	if got := s.Size(); got != (core.Size{W: 11, H: 4}) {
		t.Fatalf("size %+v, expected 11x4", got)
	}
}

func TestTerminalQuitKey(t *testing.T) {
	s, screen := newSimulatedSurface(t)
	defer s.Close()
	sim := &countingSim{cells: []uint8{1, 0, 4}}

	done := runAsync(s, context.Background(), sim, time.Hour)
	waitFor(t, "first draw", func() bool {
		r, _, _, _ := screen.GetContent(0, 0)
		return r == 'o'
	})

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	waitFor(t, "single step", func() bool { return sim.steps.Load() == 1 })

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitDone(t, done)
	if n := sim.steps.Load(); n != 1 {
		t.Fatalf("%d steps, expected 1", n)
	}
}

func TestTerminalTicksUntilCancelled(t *testing.T) {
	s, _ := newSimulatedSurface(t)
	defer s.Close()
	sim := &countingSim{cells: make([]uint8, 3)}

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(s, ctx, sim, 2*time.Millisecond)
	waitFor(t, "three ticks", func() bool { return sim.steps.Load() >= 3 })
	cancel()
	waitDone(t, done)
}

func TestTerminalEscapeQuits(t *testing.T) {
	s, screen := newSimulatedSurface(t)
	defer s.Close()
	done := runAsync(s, context.Background(), &countingSim{cells: make([]uint8, 3)}, time.Hour)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	waitDone(t, done)
}

func TestTerminalCloseFlushesLog(t *testing.T) {
	var out bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&out)
	defer log.SetOutput(prev)

	s, _ := newSimulatedSurface(t)
	log.Print("while the screen is up")
	if out.Len() != 0 {
		t.Fatal("log written to the terminal while the screen was active")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.Contains(out.String(), "while the screen is up") {
		t.Fatalf("log not flushed on close: %q", out.String())
	}
	if log.Writer() != &out {
		t.Fatal("logger output not restored")
	}
}
