package model

import "github.com/sheikhrachel/go-sparse-gol/rules"

// Advance computes the generation following prev. Only live cells and their
// immediate neighbors are examined, so the cost follows the population rather
// than any board area. prev is only read; pool may be nil.
func Advance(prev *LiveSet, pool *LiveSetPool) *LiveSet {
	next := getSet(pool)
	if prev.Len() == 0 {
		return next
	}

	// candidates maps a coordinate to whether it is exempt from the birth check
	candidates := make(map[Coord]bool, prev.Len()*8)

	for c, alive := range prev.cells {
		neighbors := c.Neighbors()

		if rules.Survives(countLiveNeighbors(neighbors, prev)) {
			next.cells[c] = alive
			candidates[c] = true
		}

		for _, n := range neighbors {
			if _, seen := candidates[n]; !seen {
				candidates[n] = false
			}
		}
	}

	for c, exempt := range candidates {
		if exempt {
			continue
		}
		if rules.Born(countLiveNeighbors(c.Neighbors(), prev)) {
			next.Insert(c)
		}
	}

	return next
}

// countLiveNeighbors counts how many of the neighbor coordinates are alive in gen
func countLiveNeighbors(neighbors [8]Coord, gen *LiveSet) (count int) {
	for _, n := range neighbors {
		if gen.Contains(n) {
			count++
		}
	}
	return
}
