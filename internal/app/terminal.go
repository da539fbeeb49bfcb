package app

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-table/internal/core"
	"life-table/internal/render"
)

const terminalBackend = "terminal"

func init() {
	core.RegisterBackend(core.Backend{
		Name:     terminalBackend,
		Priority: 10,
		Open:     openTerminal,
	})
}

// terminalSurface runs a simulation on a character screen. While it is open
// the standard logger writes to the configured log file, or to a buffer that
// is flushed to the previous output on Close.
type terminalSurface struct {
	screen  tcell.Screen
	painter *render.Painter

	logOut  io.Writer
	logBuf  *bytes.Buffer
	logFile *os.File
}

func openTerminal(opts core.Options) (core.Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	s, err := newTerminalSurface(screen, opts.LogFile)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return s, nil
}

func newTerminalSurface(screen tcell.Screen, logFile string) (*terminalSurface, error) {
	s := &terminalSurface{screen: screen, painter: render.NewPainter(), logOut: log.Writer()}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", logFile)
		}
		s.logFile = f
		log.SetOutput(f)
	} else {
		s.logBuf = &bytes.Buffer{}
		log.SetOutput(s.logBuf)
	}
	screen.HideCursor()
	screen.Clear()
	return s, nil
}

// Size leaves the last column free, as writing to the bottom-right corner
// scrolls some terminals.
func (s *terminalSurface) Size() core.Size {
	cols, rows := s.screen.Size()
	return core.Size{W: max(1, cols-1), H: max(1, rows)}
}

// Run draws sim, then steps and redraws it once per tick. Space pauses, n
// steps once, q, Esc and Ctrl-C quit.
func (s *terminalSurface) Run(ctx context.Context, sim core.Sim, tick time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	control := make(chan rune, 16)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return s.pollEvents(control)
	})
	g.Go(func() error {
		// Wakes pollEvents once the loop is done.
		defer s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return s.loop(ctx, sim, tick, control)
	})
	return g.Wait()
}

func (s *terminalSurface) pollEvents(control chan<- rune) error {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyRune:
				select {
				case control <- ev.Rune():
				default:
				}
			}
		}
	}
}

func (s *terminalSurface) loop(ctx context.Context, sim core.Sim, tick time.Duration, control <-chan rune) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	paused := false
	s.painter.Draw(s.screen, sim)
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-control:
			switch r {
			case ' ':
				paused = !paused
			case 'n':
				sim.Step()
				s.painter.Draw(s.screen, sim)
			}
		case <-ticker.C:
			if paused {
				continue
			}
			sim.Step()
			s.painter.Draw(s.screen, sim)
		}
	}
}

// Close restores the terminal and the standard logger.
func (s *terminalSurface) Close() error {
	s.screen.Fini()
	log.SetOutput(s.logOut)
	if s.logBuf != nil && s.logBuf.Len() > 0 {
		if _, err := s.logOut.Write(s.logBuf.Bytes()); err != nil {
			return errors.Wrap(err, "flushing log")
		}
	}
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}
