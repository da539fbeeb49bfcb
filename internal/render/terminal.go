package render

import (
	"github.com/gdamore/tcell/v2"

	"life-table/internal/core"
)

const cellRune = 'o'

// Painter draws a simulation onto a character screen, one cell per column.
type Painter struct {
	styles [5]tcell.Style
}

// NewPainter returns a Painter using the standard intensity styles: bold for
// newborn cells, plain for established ones, dim for long-lived ones.
func NewPainter() *Painter {
	base := tcell.StyleDefault
	return &Painter{styles: [5]tcell.Style{
		base,
		base.Bold(true),
		base.Bold(true),
		base,
		base.Dim(true),
	}}
}

// Glyph returns the rune and style used for a cell of the given intensity.
func (p *Painter) Glyph(intensity uint8) (rune, tcell.Style) {
	if intensity == 0 {
		return ' ', p.styles[0]
	}
	idx := int(intensity)
	if idx >= len(p.styles) {
		idx = len(p.styles) - 1
	}
	return cellRune, p.styles[idx]
}

// Draw writes every visible cell of sim to screen and shows it. Cells beyond
// the screen edge are skipped.
func (p *Painter) Draw(screen tcell.Screen, sim core.Sim) {
	size := sim.Size()
	cells := sim.Cells()
	cols, rows := screen.Size()
	for y := 0; y < size.H && y < rows; y++ {
		for x := 0; x < size.W && x < cols; x++ {
			r, style := p.Glyph(cells[y*size.W+x])
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
