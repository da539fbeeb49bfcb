package life

// Cell is one grid position. Alive and Next double-buffer the cell's state so
// a generation can be computed before any cell changes.
type Cell struct {
	// Alive reports whether the cell is alive in the current generation.
	Alive bool
	// Next holds the state computed for the coming generation.
	Next bool
	// Streak counts consecutive generations the cell has been alive. It is
	// zero for a dead cell.
	Streak uint
}

// MaxIntensity is the intensity of cells that have survived four or more
// generations.
const MaxIntensity = 4

// Intensity maps a survival streak to the display value renderers use to
// pick a style: 0 for dead cells, the streak itself for young cells and
// MaxIntensity once the streak reaches it.
func Intensity(streak uint) uint8 {
	if streak >= MaxIntensity {
		return MaxIntensity
	}
	return uint8(streak)
}

// nextState applies Conway's rule to a cell with the given neighbor count.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
