// Package elementary implements a one-dimensional cellular automaton driven
// by an 8-bit Wolfram rule number, keeping a fixed-height window of past
// generations for display.
package elementary

import (
	"math/rand/v2"
	"strconv"

	"ca-lab/internal/core"
	"ca-lab/internal/rule"
)

// Elementary holds the current generation of a 1-D automaton plus a sliding
// window of the most recent generations, newest row last. The rule is only
// applied to interior cells; the two boundary cells are forced to zero in
// every computed generation.
type Elementary struct {
	cells int
	gens  int
	ruleN uint8
	table [8]uint8

	cur  []uint8
	nxt  []uint8
	hist *core.ByteGrid

	generation int
	rng        *rand.Rand
}

// New creates an automaton with cells columns, gens rows of history and the
// given rule number. The rule must lie in [0, 255] and both counts must be
// positive. The first generation is drawn from fair coin flips with the
// default seed; use Reset for a different seed.
func New(cells, gens, ruleNumber int) (*Elementary, error) {
	table, err := rule.Table(ruleNumber)
	if err != nil {
		return nil, err
	}
	hist, err := core.NewByteGrid(cells, gens)
	if err != nil {
		return nil, err
	}
	e := &Elementary{
		cells: cells,
		gens:  gens,
		ruleN: uint8(ruleNumber),
		table: table,
		cur:   make([]uint8, cells),
		nxt:   make([]uint8, cells),
		hist:  hist,
	}
	e.Reset(DefaultConfig().Seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the history window dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cells, H: e.gens} }

// Cells exposes the history window, row-major, oldest generation first.
func (e *Elementary) Cells() []uint8 { return e.hist.Cells() }

// Current exposes the newest generation. The last history row holds a copy.
func (e *Elementary) Current() []uint8 { return e.cur }

// Rule returns the automaton's rule number.
func (e *Elementary) Rule() uint8 { return e.ruleN }

// Generation returns how many generations have been computed since reset.
func (e *Elementary) Generation() int { return e.generation }

// Reset redraws the first generation from fair coin flips using the given
// seed and zeroes all older history rows.
func (e *Elementary) Reset(seed int64) {
	e.rng = core.NewRNG(seed).Source()
	e.generation = 0
	core.FillBinary(e.rng, e.cur)
	e.hist.Clear()
	copy(e.hist.Row(e.gens-1), e.cur)
}

// Step advances the automaton by one generation.
func (e *Elementary) Step() { e.Steps(1) }

// Steps advances the automaton n generations. Each iteration shifts the
// history window up one row, discarding the oldest generation, computes the
// next generation from the current one and writes it into the last row.
func (e *Elementary) Steps(n int) *Elementary {
	for i := 0; i < n; i++ {
		e.hist.ShiftUp()
		e.cellularStep()
		copy(e.hist.Row(e.gens-1), e.cur)
		e.generation++
	}
	return e
}

// cellularStep computes the next generation into a fresh buffer so that
// already-updated cells never feed into their neighbours' updates. Boundary
// cells are not covered by the rule and stay zero.
func (e *Elementary) cellularStep() {
	for i := range e.nxt {
		e.nxt[i] = 0
	}
	for i := 1; i < e.cells-1; i++ {
		t := e.cur[i-1]<<2 | e.cur[i]<<1 | e.cur[i+1]
		e.nxt[i] = e.table[t]
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// Parameters exposes the rule number for HUD display.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "rule", Label: "rule", Type: core.ParamTypeInt, Value: strconv.Itoa(int(e.ruleN))},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		e, err := New(c.Cells, c.Generations, c.Rule)
		if err != nil {
			return nil, err
		}
		e.Reset(c.Seed)
		return e, nil
	})
}
