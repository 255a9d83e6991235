package model

// LiveSet holds the live cells of exactly one generation. Presence means alive.
type LiveSet struct {
	cells map[Coord]bool
}

// NewLiveSet creates an empty live set
func NewLiveSet() *LiveSet {
	return &LiveSet{cells: make(map[Coord]bool)}
}

// NewLiveSetFrom creates a live set holding the given coordinates
func NewLiveSetFrom(coords ...Coord) *LiveSet {
	s := &LiveSet{cells: make(map[Coord]bool, len(coords))}
	for _, c := range coords {
		s.Insert(c)
	}
	return s
}

// Contains reports whether c is alive in this generation
func (s *LiveSet) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Insert marks c alive; inserting a live cell again is a no-op
func (s *LiveSet) Insert(c Coord) {
	s.cells[c] = true
}

// Len returns the number of live cells
func (s *LiveSet) Len() int {
	return len(s.cells)
}

// Range calls fn for every entry until fn returns false. Order is unspecified.
func (s *LiveSet) Range(fn func(c Coord, alive bool) bool) {
	for c, alive := range s.cells {
		if !fn(c, alive) {
			return
		}
	}
}

// Clear drops every entry while keeping the allocation
func (s *LiveSet) Clear() {
	clear(s.cells)
}

// Bounds is the inclusive bounding box of a live set
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
}

// Area returns the number of cells covered by the box
func (b Bounds) Area() int64 {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Bounds calculates the bounding box of the live cells; ok is false for an empty set
func (s *LiveSet) Bounds() (b Bounds, ok bool) {
	for c := range s.cells {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b, ok
}
