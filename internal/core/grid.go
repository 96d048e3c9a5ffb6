package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Dimensions must be
// positive; anything else is ErrInvalidDimension.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Row returns the slice backing row y.
func (g *ByteGrid) Row(y int) []uint8 {
	return g.data[y*g.W : (y+1)*g.W]
}

// ShiftUp moves every row one position towards row 0, discarding row 0 and
// zeroing the last row.
func (g *ByteGrid) ShiftUp() {
	copy(g.data, g.data[g.W:])
	last := g.Row(g.H - 1)
	for i := range last {
		last[i] = 0
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
