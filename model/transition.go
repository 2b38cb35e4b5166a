package model

import "github.com/sheikhrachel/go-colony-life/rules"

// Tally counts what happened to the cells during one generation
type Tally struct {
	Survivors int
	Births    int
	Deaths    int
	// Ties is the number of births whose colony was drawn at random
	Ties int
}

// Add accumulates another tally into t
func (t *Tally) Add(other Tally) {
	t.Survivors += other.Survivors
	t.Births += other.Births
	t.Deaths += other.Deaths
	t.Ties += other.Ties
}

/*
NextGeneration computes the following generation into a grid of the same size.

Survivors keep their own type. A birth takes the dominant type of its neighbors, with ties
drawn from rng. Cells are visited row-major, so a scripted rng sees the tie-breaks in that order.
*/
func (g *Grid) NextGeneration(rng rules.RandomSource, pool *GridPool) (*Grid, Tally) {
	var (
		next  *Grid
		tally Tally
	)
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}

	for y := range g.height {
		for x := range g.width {
			var (
				current = g.cells[y*g.width+x]
				alive   = rules.IsAlive(current)
				info    = g.NeighborInfo(x, y)
			)

			if !rules.ApplyConwayRules(info.Count, alive) {
				if alive {
					tally.Deaths++
				}
				continue
			}

			if alive {
				next.Set(x, y, current)
				tally.Survivors++
				continue
			}

			colony, tied := rules.ResolveDominantType(info.Types(), rng)
			next.Set(x, y, colony)
			tally.Births++
			if tied {
				tally.Ties++
			}
		}
	}

	return next, tally
}
