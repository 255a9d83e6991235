package model

// Coord identifies a single cell on the unbounded plane
type Coord struct {
	X int64
	Y int64
}

// Neighbors returns the Moore neighborhood of c, never including c itself
func (c Coord) Neighbors() [8]Coord {
	x, y := c.X, c.Y
	return [8]Coord{
		{x - 1, y + 1}, {x, y + 1}, {x + 1, y + 1},
		{x - 1, y}, {x + 1, y},
		{x - 1, y - 1}, {x, y - 1}, {x + 1, y - 1},
	}
}

// Viewport is the rectangle [0,Width)x[0,Height) drawn to the console.
// It never bounds the simulation itself.
type Viewport struct {
	Width  int
	Height int
}

// InView reports whether c falls inside the viewport
func (v Viewport) InView(c Coord) bool {
	return c.X >= 0 && c.X < int64(v.Width) && c.Y >= 0 && c.Y < int64(v.Height)
}
