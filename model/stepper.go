package model

import "github.com/sheikhrachel/go-colony-life/rules"

// Stepper applies one generation to board text. It keeps no state between calls
// beyond an optional pool of reusable grids.
type Stepper struct {
	maxBoardSize int
	pool         *GridPool
}

// NewStepper creates a Stepper bounded by maxBoardSize bytes (DefaultMaxBoardSize when <= 0).
// A nil pool allocates fresh grids on every call.
func NewStepper(maxBoardSize int, pool *GridPool) *Stepper {
	if maxBoardSize <= 0 {
		maxBoardSize = DefaultMaxBoardSize
	}
	return &Stepper{maxBoardSize: maxBoardSize, pool: pool}
}

// MaxBoardSize returns the largest board the Stepper will process
func (s *Stepper) MaxBoardSize() int {
	return s.maxBoardSize
}

// Step returns the next generation of board. Boards that cannot be parsed, including empty
// and oversized ones, come back unchanged with a zero Tally and ok set to false.
func (s *Stepper) Step(board []byte, rng rules.RandomSource) (next []byte, tally Tally, ok bool) {
	grid, ok := ParseBoard(board, s.maxBoardSize)
	if !ok {
		return board, Tally{}, false
	}
	if rng == nil {
		rng = rules.GlobalRandom()
	}

	nextGrid, tally := grid.NextGeneration(rng, s.pool)
	next = nextGrid.Bytes()
	GridToPool(nextGrid, s.pool)
	return next, tally, true
}

// NextGeneration returns the next generation of board using the default size bound
func NextGeneration(board []byte, rng rules.RandomSource) []byte {
	out, _, _ := NewStepper(DefaultMaxBoardSize, nil).Step(board, rng)
	return out
}
