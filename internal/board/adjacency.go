package board

// Adjacency maps every 1-indexed square number to the square numbers that
// share an edge with it on the grid. The table is derived from the fixed
// grid topology once and is read-only input to the search engine.
type Adjacency map[int][]int

// NewAdjacency builds the adjacency table for a side×side grid.
func NewAdjacency(side int) Adjacency {
	adj := make(Adjacency, side*side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			slot := row*side + col
			var neighbors []int
			if row > 0 {
				neighbors = append(neighbors, SlotToSquare(slot-side))
			}
			if col > 0 {
				neighbors = append(neighbors, SlotToSquare(slot-1))
			}
			if col < side-1 {
				neighbors = append(neighbors, SlotToSquare(slot+1))
			}
			if row < side-1 {
				neighbors = append(neighbors, SlotToSquare(slot+side))
			}
			adj[SlotToSquare(slot)] = neighbors
		}
	}
	return adj
}
