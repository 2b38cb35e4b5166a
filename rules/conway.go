package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

const (
	// DeadCell marks an empty position on the board
	DeadCell byte = ' '
	// FallbackType is the colony assigned to a birth with no live neighbors
	FallbackType byte = 'O'
)

// IsAlive reports whether a board byte is a live cell
func IsAlive(cell byte) bool {
	return cell != DeadCell
}
