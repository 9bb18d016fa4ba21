package main

import "image/color"

// PixelSquare is a single painted square. It is never modified after it is
// placed on a Canvas.
type PixelSquare struct {
	Color color.RGBA
	X     float64
	Y     float64
}

// NewPixelSquare accepts any coordinates, including ones off the canvas.
func NewPixelSquare(c color.RGBA, x, y float64) PixelSquare {
	return PixelSquare{Color: c, X: x, Y: y}
}

func (p PixelSquare) Render(s Surface) {
	s.FillRect(p.Color, p.X, p.Y, SquareSize)
}

// Canvas owns the painted squares in paint order. Squares are only ever
// appended; later squares cover earlier ones at the same position.
type Canvas struct {
	squares []PixelSquare
	limit   int // 0 means unbounded
}

func NewCanvas(seed ...PixelSquare) *Canvas {
	squares := make([]PixelSquare, len(seed))
	copy(squares, seed)
	return &Canvas{squares: squares}
}

// Append adds sq after every existing square. It reports false without
// touching the sequence only when a cap is set and already reached.
func (c *Canvas) Append(sq PixelSquare) bool {
	if c.limit > 0 && len(c.squares) >= c.limit {
		return false
	}
	c.squares = append(c.squares, sq)
	return true
}

// Render clears the surface once and then draws every square in the order it
// was appended.
func (c *Canvas) Render(s Surface) {
	s.Clear(BackgroundColor)
	for _, sq := range c.squares {
		sq.Render(s)
	}
}

func (c *Canvas) Len() int {
	return len(c.squares)
}

// Squares returns a copy of the painted squares.
func (c *Canvas) Squares() []PixelSquare {
	out := make([]PixelSquare, len(c.squares))
	copy(out, c.squares)
	return out
}

func (c *Canvas) Limit() int {
	return c.limit
}

// SetLimit caps the number of squares. A cap below the current length keeps
// every existing square and only refuses further appends.
func (c *Canvas) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	c.limit = n
}

func (c *Canvas) Full() bool {
	return c.limit > 0 && len(c.squares) >= c.limit
}

// seedSquares are the squares a fresh board starts with.
func seedSquares() []PixelSquare {
	return []PixelSquare{
		NewPixelSquare(color.RGBA{0, 0, 0, 255}, 0, 0),
		NewPixelSquare(color.RGBA{255, 0, 0, 255}, 10, 0),
		NewPixelSquare(color.RGBA{0, 255, 0, 255}, 0, 10),
		NewPixelSquare(color.RGBA{0, 0, 255, 255}, 10, 10),
	}
}
