// Package ui draws the status overlay shown on top of the pixel surface.
package ui

import (
	"fmt"

	"life-table/internal/core"
)

func statusLine(s *core.Stats, paused bool) string {
	line := fmt.Sprintf("gen %d  pop %d  avg %.1f  peak %d  %.1f gen/s",
		s.Generation, s.Population, s.AveragePopulation, s.PeakPopulation, s.GenerationsPerSecond)
	if paused {
		line += "  [paused]"
	}
	return line
}
