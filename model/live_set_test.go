package model

import "testing"

func TestLiveSetInsertIsIdempotent(t *testing.T) {
	s := NewLiveSet()
	s.Insert(Coord{3, -4})
	s.Insert(Coord{3, -4})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d after inserting the same cell twice, want 1", s.Len())
	}
	if !s.Contains(Coord{3, -4}) {
		t.Fatalf("Contains((3,-4)) = false after insert")
	}
	if s.Contains(Coord{-4, 3}) {
		t.Fatalf("Contains((-4,3)) = true for a cell never inserted")
	}
}

func TestLiveSetRangeStops(t *testing.T) {
	s := NewLiveSetFrom(Coord{0, 0}, Coord{1, 1}, Coord{2, 2})

	visited := 0
	s.Range(func(_ Coord, alive bool) bool {
		if !alive {
			t.Fatalf("Range yielded a dead entry")
		}
		visited++
		return false
	})

	if visited != 1 {
		t.Fatalf("Range visited %d entries after stop, want 1", visited)
	}
}

func TestLiveSetClear(t *testing.T) {
	s := NewLiveSetFrom(Coord{0, 0}, Coord{1, 1})
	s.Clear()

	if s.Len() != 0 || s.Contains(Coord{0, 0}) {
		t.Fatalf("Clear left %d cells behind", s.Len())
	}
}

func TestLiveSetBounds(t *testing.T) {
	if _, ok := NewLiveSet().Bounds(); ok {
		t.Fatalf("Bounds() reported ok for an empty set")
	}

	s := NewLiveSetFrom(Coord{-2, 5}, Coord{3, -1}, Coord{0, 0})
	b, ok := s.Bounds()
	if !ok {
		t.Fatalf("Bounds() reported not ok for a populated set")
	}

	want := Bounds{MinX: -2, MaxX: 3, MinY: -1, MaxY: 5}
	if b != want {
		t.Fatalf("Bounds() = %+v, want %+v", b, want)
	}
	if b.Area() != 42 {
		t.Fatalf("Area() = %d, want 42", b.Area())
	}
}

func TestNeighborsExcludeSelf(t *testing.T) {
	c := Coord{-7, 9}
	seen := map[Coord]bool{}

	for _, n := range c.Neighbors() {
		if n == c {
			t.Fatalf("Neighbors() of %v contains the cell itself", c)
		}
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("Neighbors() of %v contains distant cell %v", c, n)
		}
		seen[n] = true
	}

	if len(seen) != 8 {
		t.Fatalf("Neighbors() returned %d distinct cells, want 8", len(seen))
	}
}

func TestLiveSetPoolReturnsEmptySets(t *testing.T) {
	pool := NewLiveSetPool()

	s := pool.Get()
	s.Insert(Coord{1, 1})
	pool.Put(s)

	if got := pool.Get(); got.Len() != 0 {
		t.Fatalf("pool handed out a set with %d cells", got.Len())
	}

	// nil pool and nil set are both ignored
	SetToPool(NewLiveSet(), nil)
	SetToPool(nil, pool)
}
