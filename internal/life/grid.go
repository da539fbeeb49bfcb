package life

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"life-table/internal/core"
)

// Grid is a fixed-size Game of Life board without wraparound. Cells are
// stored row-major behind a logical origin so Recenter can rotate rows and
// columns without moving data; every exported method works in logical
// coordinates.
type Grid struct {
	w, h   int
	ox, oy int
	cells  []Cell

	intensity  *core.ByteGrid
	generation int
}

// New returns a grid of the given size with every cell dead.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[life.New] %dx%d", w, h)
	}
	return &Grid{
		w:         w,
		h:         h,
		cells:     make([]Cell, w*h),
		intensity: core.NewByteGrid(w, h),
	}, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the intensity of every cell in row-major order, refreshed
// once per generation. The slice is owned by the grid.
func (g *Grid) Cells() []uint8 { return g.intensity.Cells() }

// IntensityAt returns the intensity of the cell at (x, y), or 0 outside the grid.
func (g *Grid) IntensityAt(x, y int) uint8 { return g.intensity.At(x, y) }

// Generation returns the number of generations advanced so far.
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) in(x, y int) bool { return x >= 0 && x < g.w && y >= 0 && y < g.h }

// index maps a logical coordinate to its slot in cells.
func (g *Grid) index(x, y int) int {
	px, py := g.intensity.Wrap(x+g.ox, y+g.oy)
	return py*g.w + px
}

func (g *Grid) cell(x, y int) *Cell { return &g.cells[g.index(x, y)] }

// Cell returns a copy of the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.in(x, y) {
		return Cell{}, false
	}
	return *g.cell(x, y), true
}

// SetAlive marks the cell at (x, y) alive in the current generation.
func (g *Grid) SetAlive(x, y int) error {
	if !g.in(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[life.SetAlive] (%d,%d) outside %dx%d", x, y, g.w, g.h)
	}
	g.cell(x, y).Alive = true
	return nil
}

// Alive reports whether the cell at (x, y) is alive. Positions outside the
// grid are dead.
func (g *Grid) Alive(x, y int) bool {
	return g.in(x, y) && g.cell(x, y).Alive
}

// Streak returns the survival streak of the cell at (x, y).
func (g *Grid) Streak(x, y int) uint {
	if !g.in(x, y) {
		return 0
	}
	return g.cell(x, y).Streak
}

// NeighborCount counts living cells among the up to eight neighbors of
// (x, y) that lie inside the grid.
func (g *Grid) NeighborCount(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.w-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.h-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cell(nx, ny).Alive {
				count++
			}
		}
	}
	return count
}

// AdvanceGeneration moves every cell to the next generation. All next states
// are computed from the current generation before any cell is committed.
func (g *Grid) AdvanceGeneration() {
	g.compute()
	g.commit()
	g.generation++
}

// Step advances one generation.
func (g *Grid) Step() { g.AdvanceGeneration() }

// compute reads only Alive and writes only Next.
func (g *Grid) compute() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cell(x, y)
			c.Next = nextState(c.Alive, g.NeighborCount(x, y))
		}
	}
}

func (g *Grid) commit() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cell(x, y)
			c.Alive = c.Next
			if c.Alive {
				c.Streak++
			} else {
				c.Streak = 0
			}
			g.intensity.Set(x, y, Intensity(c.Streak))
		}
	}
}

// rebuildIntensity recomputes the display buffer from the cells alone.
func (g *Grid) rebuildIntensity() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.intensity.Set(x, y, Intensity(g.cell(x, y).Streak))
		}
	}
}

// Population returns the number of living cells.
func (g *Grid) Population() (count int) {
	for i := range g.cells {
		if g.cells[i].Alive {
			count++
		}
	}
	return
}

// Clear kills every cell and resets the generation counter and origin.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.ox, g.oy = 0, 0
	g.generation = 0
	g.intensity.Clear()
}

// Hash returns an MD5 digest of which cells are alive, in logical order.
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			row[x] = 0
			if g.cell(x, y).Alive {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Bounds is an inclusive bounding box in grid coordinates.
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns the number of columns covered.
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered.
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Bounds returns the tight bounding box of living cells. ok is false when no
// cell is alive.
func (g *Grid) Bounds() (b Bounds, ok bool) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if !g.cell(x, y).Alive {
				continue
			}
			if !ok {
				b = Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
				ok = true
				continue
			}
			b.MinX = min(b.MinX, x)
			b.MaxX = max(b.MaxX, x)
			b.MinY = min(b.MinY, y)
			b.MaxY = max(b.MaxY, y)
		}
	}
	return b, ok
}
