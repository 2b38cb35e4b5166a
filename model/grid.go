package model

import "github.com/sheikhrachel/go-colony-life/rules"

const (
	// DefaultMaxBoardSize bounds both the board text and the grid it parses into
	DefaultMaxBoardSize = 100_000

	rowSeparator byte = '\n'
)

// Grid is a parsed board: one type byte per cell, stored row-major
type Grid struct {
	width  int
	height int
	cells  []byte
}

// NewGrid creates a grid with every cell dead
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid, reusing its buffer when it is large enough, and kills every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]byte, size)
	}
	g.cells = g.cells[:size]
	g.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = rules.DeadCell
	}
}

// Set writes a cell's byte; positions outside the grid are ignored
func (g *Grid) Set(x, y int, cell byte) {
	if g.inBounds(x, y) {
		g.cells[y*g.width+x] = cell
	}
}

// Get returns a cell's byte, or DeadCell outside the grid
func (g *Grid) Get(x, y int) byte {
	if !g.inBounds(x, y) {
		return rules.DeadCell
	}
	return g.cells[y*g.width+x]
}

// Alive reports whether the cell at (x, y) is alive; positions outside the grid are dead
func (g *Grid) Alive(x, y int) bool {
	return rules.IsAlive(g.Get(x, y))
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

/*
ParseBoard reads a newline separated board into a grid.

The width is the length of the first non-empty row and the height is the number of rows,
counting a final row without a trailing newline. Row lengths are not checked against the
width: every non-newline byte is laid down row-major in input order, so a short or long
row shifts the rows after it. Cells left over when the input runs out are zero bytes.

It returns false, meaning the board should be passed through untouched, for an empty board,
a board longer than maxSize, a zero width or height, or a grid whose board text would be
longer than maxSize.
A maxSize of zero or less selects DefaultMaxBoardSize.
*/
func ParseBoard(board []byte, maxSize int) (*Grid, bool) {
	if maxSize <= 0 {
		maxSize = DefaultMaxBoardSize
	}
	if len(board) == 0 || len(board) > maxSize {
		return nil, false
	}

	var width, height, rowWidth int
	for _, b := range board {
		if b == rowSeparator {
			if width == 0 {
				width = rowWidth
			}
			height++
			rowWidth = 0
			continue
		}
		rowWidth++
	}
	if rowWidth > 0 {
		if width == 0 {
			width = rowWidth
		}
		height++
	}

	if width == 0 || height == 0 || width*height+height-1 > maxSize {
		return nil, false
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
	idx := 0
	for _, b := range board {
		if b == rowSeparator {
			continue
		}
		if idx == len(g.cells) {
			break
		}
		g.cells[idx] = b
		idx++
	}
	return g, true
}

// Bytes serializes the grid back into board text: rows of exactly width bytes joined by
// a single newline, with no trailing newline
func (g *Grid) Bytes() []byte {
	out := make([]byte, 0, max(g.width*g.height+g.height-1, 0))
	for y := range g.height {
		if y > 0 {
			out = append(out, rowSeparator)
		}
		out = append(out, g.cells[y*g.width:(y+1)*g.width]...)
	}
	return out
}

// String returns the board text of the grid
func (g *Grid) String() string {
	return string(g.Bytes())
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		if rules.IsAlive(cell) {
			count++
		}
	}
	return
}

// ColonyCount is the population of one cell type
type ColonyCount struct {
	Colony     byte
	Population int
}

// Census returns the population of every colony present, ordered by type byte
func (g *Grid) Census() []ColonyCount {
	var populations [256]int
	for _, cell := range g.cells {
		if rules.IsAlive(cell) {
			populations[cell]++
		}
	}

	census := make([]ColonyCount, 0)
	for colony, population := range populations {
		if population > 0 {
			census = append(census, ColonyCount{Colony: byte(colony), Population: population})
		}
	}
	return census
}
