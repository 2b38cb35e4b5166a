package utils

import "time"

// Stats for a single board run
type Stats struct {
	Generations          int
	Population           int
	Survivors            int
	Births               int
	Deaths               int
	Ties                 int
	GenerationsPerSecond float64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one finished generation
func (s *Stats) Update(population, survivors, births, deaths, ties int) {
	s.Generations++
	s.Population = population
	s.Survivors += survivors
	s.Births += births
	s.Deaths += deaths
	s.Ties += ties

	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(s.Generations) / elapsed.Seconds()
	}
}
