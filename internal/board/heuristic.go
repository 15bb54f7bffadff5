package board

// HeuristicDistance returns the sum of Manhattan distances between each
// tile's current slot and its slot in goal. The blank contributes zero.
// size is the slot count of the grid and must be a perfect square; anything
// else is a configuration error and yields ErrGridNotSquare rather than a
// wrong metric.
//
// The result never overestimates the true remaining move count (admissible)
// and changes by at most 1 across a single legal move (consistent), which is
// what makes it safe as an A* estimate.
func HeuristicDistance(b, goal Board, size int) (int, error) {
	side, err := Side(size)
	if err != nil {
		return 0, err
	}

	// Slot of every tile in the goal configuration.
	goalSlot := make(map[int]int, len(goal))
	for i, v := range goal {
		goalSlot[v] = i
	}

	sum := 0
	for i, v := range b {
		if v == Blank {
			continue
		}
		gi, ok := goalSlot[v]
		if !ok {
			continue
		}
		sum += abs(i/side-gi/side) + abs(i%side-gi%side)
	}
	return sum, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
