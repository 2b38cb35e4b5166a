package model

// NeighborInfo holds the live neighbors of one cell, in scan order
type NeighborInfo struct {
	Count int
	types [8]byte
}

// Types returns the type bytes of the live neighbors, top row first, left to right
func (n *NeighborInfo) Types() []byte {
	return n.types[:n.Count]
}

// NeighborInfo scans the Moore neighborhood of (x, y). Positions off the board do not exist.
func (g *Grid) NeighborInfo(x, y int) NeighborInfo {
	var info NeighborInfo

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.Alive(nx, ny) {
				continue
			}
			info.types[info.Count] = g.Get(nx, ny)
			info.Count++
		}
	}

	return info
}
