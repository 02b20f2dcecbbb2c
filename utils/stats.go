package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Red                  int
	Blue                 int
	Neutral              int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame. red, blue and neutral are the living cells per team.
func (s *Stats) Update(generation int, red, blue, neutral int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Red, s.Blue, s.Neutral = red, blue, neutral
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	population := float64(red + blue + neutral)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = population
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (population * 0.1)
	}
}

// Leader names the team with more living cells, or "tie"
func (s *Stats) Leader() string {
	switch {
	case s.Red > s.Blue:
		return "red"
	case s.Blue > s.Red:
		return "blue"
	default:
		return "tie"
	}
}
