package core

import "time"

// Stats tracks throughput and population over a run.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int
	Population           int
	PeakPopulation       int
}

// NewStats returns empty Stats.
func NewStats() *Stats {
	return &Stats{}
}

// Update records one generation and how long it took.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average, seeded with the first sample.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
