package model

import (
	"math"
	"math/rand/v2"
)

// NewRNG creates a deterministic PCG-backed generator for the given seed
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// SeedCount is the number of draws made when seeding a viewport
func SeedCount(v Viewport) int {
	return int(math.Ceil(float64(v.Width+v.Height) * 5.0))
}

// Seed scatters SeedCount uniform draws over the viewport. Repeated draws of
// the same cell collapse, so the result may hold fewer cells than draws.
func Seed(rng *rand.Rand, v Viewport) *LiveSet {
	set := NewLiveSet()
	if v.Width <= 0 || v.Height <= 0 {
		return set
	}

	for range SeedCount(v) {
		set.Insert(Coord{
			X: rng.Int64N(int64(v.Width)),
			Y: rng.Int64N(int64(v.Height)),
		})
	}
	return set
}
