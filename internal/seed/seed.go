// Package seed reads initial Game of Life populations from the plain text
// pattern format and from a set of built-in patterns.
//
// In the text format every line starting with '!' is a comment. Each other
// line is one row; the character 'O' marks a living cell in that column and
// any other character a dead one.
package seed

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrPatternTooLarge is returned when a pattern does not fit the grid.
	// The grid is left untouched.
	ErrPatternTooLarge = errors.New("pattern too large for grid")
	// ErrUnreadableSeedSource is returned when a seed source cannot be read.
	ErrUnreadableSeedSource = errors.New("seed source unreadable")
)

// Target is the grid a pattern is written to.
type Target interface {
	Width() int
	Height() int
	SetAlive(x, y int) error
}

// Point is a living cell position within a pattern.
type Point struct {
	X, Y int
}

// Pattern is a parsed population anchored at (0, 0).
type Pattern struct {
	Width  int
	Height int
	Alive  []Point
}

// maxLineBytes bounds a single pattern row. No grid is that wide.
const maxLineBytes = 1 << 20

// Parse reads a pattern in the text format. A row longer than maxLineBytes
// is reported as ErrPatternTooLarge.
func Parse(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.HasPrefix(line, "!") {
			continue
		}
		x := 0
		for _, c := range line {
			if c == 'O' {
				p.Alive = append(p.Alive, Point{X: x, Y: p.Height})
			}
			x++
		}
		p.Width = max(p.Width, utf8.RuneCountInString(line))
		p.Height++
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Pattern{}, errors.Wrapf(ErrPatternTooLarge, "[seed.Parse] row %d longer than %d bytes", p.Height, maxLineBytes)
		}
		return Pattern{}, errors.Wrapf(ErrUnreadableSeedSource, "[seed.Parse] %v", err)
	}
	return p, nil
}

// Fits reports whether the pattern fits a w by h grid.
func (p Pattern) Fits(w, h int) bool { return p.Width <= w && p.Height <= h }

// Apply marks the pattern's living cells on g. Nothing is written when the
// pattern does not fit.
func (p Pattern) Apply(g Target) error {
	if !p.Fits(g.Width(), g.Height()) {
		return errors.Wrapf(ErrPatternTooLarge, "[seed.Apply] pattern %dx%d, grid %dx%d",
			p.Width, p.Height, g.Width(), g.Height())
	}
	for _, c := range p.Alive {
		if err := g.SetAlive(c.X, c.Y); err != nil {
			return errors.Wrap(err, "[seed.Apply]")
		}
	}
	return nil
}

// Load parses a pattern from r and applies it to g.
func Load(r io.Reader, g Target) error {
	p, err := Parse(r)
	if err != nil {
		return err
	}
	return p.Apply(g)
}

// LoadFile loads the pattern stored at path. When the file cannot be opened
// or read the default pattern is applied instead and the returned error wraps
// ErrUnreadableSeedSource; callers may treat that as a warning.
func LoadFile(path string, g Target) error {
	f, err := os.Open(path)
	if err != nil {
		return fallback(g, errors.Wrapf(ErrUnreadableSeedSource, "[seed.LoadFile] %v", err))
	}
	defer f.Close()

	p, err := Parse(f)
	if errors.Is(err, ErrPatternTooLarge) {
		return errors.Wrapf(err, "[seed.LoadFile] %s", path)
	}
	if err != nil {
		return fallback(g, errors.Wrapf(err, "[seed.LoadFile] %s", path))
	}
	return errors.Wrapf(p.Apply(g), "[seed.LoadFile] %s", path)
}

func fallback(g Target, cause error) error {
	if err := Default(g); err != nil {
		return errors.Wrap(err, "[seed.LoadFile] default pattern")
	}
	return cause
}
