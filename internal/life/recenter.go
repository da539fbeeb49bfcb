package life

// Shift records how many rotations Recenter applied on each axis. Positive
// Columns moved content right, positive Rows moved content down.
type Shift struct {
	Columns int
	Rows    int
}

// Recenter rotates whole columns and rows so the bounding box of living cells
// sits in the middle of the grid. Cells keep their state and move with their
// row or column. On each axis only one direction is ever applied. A grid with
// no living cells is left as is.
//
// The right margin is measured as width-xMax and the left one as xMin; the
// loops stop once they differ by at most one.
func (g *Grid) Recenter() Shift {
	b, ok := g.Bounds()
	if !ok {
		return Shift{}
	}

	var s Shift
	xMin, xMax := b.MinX, b.MaxX
	if g.w-xMax > xMin+1 {
		for g.w-xMax > xMin+1 {
			g.rotateRight()
			xMin++
			xMax++
			s.Columns++
		}
	} else {
		for xMin > g.w-xMax+1 {
			g.rotateLeft()
			xMin--
			xMax--
			s.Columns--
		}
	}

	yMin, yMax := b.MinY, b.MaxY
	if g.h-yMax > yMin+1 {
		for g.h-yMax > yMin+1 {
			g.rotateDown()
			yMin++
			yMax++
			s.Rows++
		}
	} else {
		for yMin > g.h-yMax+1 {
			g.rotateUp()
			yMin--
			yMax--
			s.Rows--
		}
	}

	if s != (Shift{}) {
		g.rebuildIntensity()
	}
	return s
}

// rotateRight moves the last column to index 0.
func (g *Grid) rotateRight() { g.ox = (g.ox + g.w - 1) % g.w }

// rotateLeft moves the first column to the end.
func (g *Grid) rotateLeft() { g.ox = (g.ox + 1) % g.w }

// rotateDown moves the last row to index 0.
func (g *Grid) rotateDown() { g.oy = (g.oy + g.h - 1) % g.h }

// rotateUp moves the first row to the end.
func (g *Grid) rotateUp() { g.oy = (g.oy + 1) % g.h }
