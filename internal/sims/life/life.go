// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"fmt"
	"math/rand/v2"

	"ca-lab/internal/core"
)

// Life advances a toroidal grid one generation at a time. Each step is
// computed from a single snapshot of the previous generation: no cell's new
// state influences another cell's new state within the same step.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	// Linear indices of the 8 toroidal neighbours of every cell, computed
	// once at construction and reused on every step.
	neighbors []int32

	generation int
	threshold  float64
	rng        *rand.Rand
}

// New returns a Life simulation with the provided dimensions and an all-dead
// grid. Non-positive dimensions are ErrInvalidDimension.
func New(w, h int) (*Life, error) {
	cur, err := core.NewByteGrid(w, h)
	if err != nil {
		return nil, err
	}
	nxt, _ := core.NewByteGrid(w, h)
	return &Life{
		cur:       cur,
		nxt:       nxt,
		neighbors: neighborIndex(cur),
		threshold: 0.5,
		rng:       core.NewRNG(0).Source(),
	}, nil
}

// FromCells returns a Life simulation whose initial grid is the provided
// row-major cell slice. The slice length must match w*h; nonzero values are
// treated as live.
func FromCells(w, h int, cells []uint8) (*Life, error) {
	l, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", core.ErrInvalidDimension, len(cells), w, h)
	}
	dst := l.cur.Cells()
	for i, c := range cells {
		if c != 0 {
			dst[i] = 1
		}
	}
	return l, nil
}

// neighborIndex precomputes, for every cell, the wrapped linear index of
// each of its 8 neighbours. Offsets are ordered E, W, S, N, SE, NW, NE, SW.
func neighborIndex(g *core.ByteGrid) []int32 {
	offsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	}
	idx := make([]int32, 0, 8*g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			for _, d := range offsets {
				nx, ny := g.Wrap(x+d[0], y+d[1])
				idx = append(idx, int32(g.Index(nx, ny)))
			}
		}
	}
	return idx
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values. The slice is backing storage, not a
// copy; it is only valid until the next step.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns how many generations have been computed since the last
// reset. It advances once per generation, including each iteration inside a
// multi-step Advance call.
func (l *Life) Generation() int { return l.generation }

// Reset randomizes the board using the provided seed and rewinds the
// generation counter.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed).Source()
	l.generation = 0
	l.Randomize(l.threshold)
}

// Randomize replaces the grid with an independent draw per cell: a cell
// becomes live iff a uniform sample exceeds p, so live probability is 1-p.
// Returns the receiver for chaining.
func (l *Life) Randomize(p float64) *Life {
	core.FillBernoulli(l.rng, l.cur.Cells(), p)
	return l
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for i := range cur {
		n := uint8(0)
		for _, j := range l.neighbors[i*8 : i*8+8] {
			n += cur[j]
		}
		// Under- or over-populated cells die first, then any cell with
		// exactly three live neighbours is set live. Both rules read the
		// same pre-step counts.
		v := cur[i]
		if n < 2 || n > 3 {
			v = 0
		}
		if n == 3 {
			v = 1
		}
		nxt[i] = v
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Advance applies the update rule n times sequentially.
func (l *Life) Advance(n int) *Life {
	for i := 0; i < n; i++ {
		l.Step()
	}
	return l
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		l.threshold = c.Threshold
		return l, nil
	})
}
