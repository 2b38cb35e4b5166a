package rules

// maxNeighbors is the size of a Moore neighborhood
const maxNeighbors = 8

type colonyTally struct {
	colony byte
	count  int
}

// Winners returns every type that reaches the highest occurrence count in types,
// in the order each type was first seen
func Winners(types []byte) []byte {
	var (
		tallies = make([]colonyTally, 0, maxNeighbors)
		best    int
	)

	for _, t := range types {
		found := false
		for i := range tallies {
			if tallies[i].colony == t {
				tallies[i].count++
				found = true
				break
			}
		}
		if !found {
			tallies = append(tallies, colonyTally{colony: t, count: 1})
		}
	}

	for _, tally := range tallies {
		best = max(best, tally.count)
	}

	winners := make([]byte, 0, len(tallies))
	for _, tally := range tallies {
		if tally.count == best {
			winners = append(winners, tally.colony)
		}
	}
	return winners
}

/*
ResolveDominantType picks the colony a newly born cell inherits from its live neighbors.

The most frequent neighbor type wins. When several types share the highest count, one of
them is drawn uniformly from rng and tied is reported as true.
*/
func ResolveDominantType(types []byte, rng RandomSource) (colony byte, tied bool) {
	switch len(types) {
	case 0:
		// births need three neighbors, so this only guards direct callers
		return FallbackType, false
	case 1:
		return types[0], false
	}

	winners := Winners(types)
	if len(winners) == 1 {
		return winners[0], false
	}
	return winners[rng.Intn(len(winners))], true
}
