package elementary

import (
	"errors"
	"slices"
	"testing"

	"ca-lab/internal/core"
)

func TestNewValidatesArguments(t *testing.T) {
	for _, r := range []int{-1, 256, 1000} {
		if _, err := New(16, 16, r); !errors.Is(err, core.ErrInvalidRule) {
			t.Fatalf("New with rule %d: error = %v, want ErrInvalidRule", r, err)
		}
	}
	if _, err := New(0, 16, 110); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("zero cells: error = %v, want ErrInvalidDimension", err)
	}
	if _, err := New(16, 0, 110); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("zero generations: error = %v, want ErrInvalidDimension", err)
	}
	if _, err := New(16, 16, 110); err != nil {
		t.Fatalf("valid arguments rejected: %v", err)
	}
}

func TestFactoryRejectsFractionalRule(t *testing.T) {
	factory := core.Sims()["elementary"]
	if factory == nil {
		t.Fatal("elementary not registered")
	}
	if _, err := factory(map[string]string{"rule": "3.5"}); !errors.Is(err, core.ErrInvalidRule) {
		t.Fatalf("rule 3.5: error = %v, want ErrInvalidRule", err)
	}
	if _, err := factory(map[string]string{"rule": "300"}); !errors.Is(err, core.ErrInvalidRule) {
		t.Fatalf("rule 300: error = %v, want ErrInvalidRule", err)
	}
}

func setCurrent(e *Elementary, pattern []uint8) {
	copy(e.Current(), pattern)
}

func TestBoundaryCellsStayDead(t *testing.T) {
	// Rule 255 sets every neighbourhood live, so only the frozen
	// boundaries can remain zero.
	e, err := New(16, 8, 255)
	if err != nil {
		t.Fatal(err)
	}
	ones := make([]uint8, 16)
	for i := range ones {
		ones[i] = 1
	}
	setCurrent(e, ones)

	for step := 0; step < 5; step++ {
		e.Steps(1)
		cur := e.Current()
		if cur[0] != 0 || cur[15] != 0 {
			t.Fatalf("step %d: boundary cells %d, %d; want 0, 0", step, cur[0], cur[15])
		}
		for i := 1; i < 15; i++ {
			if cur[i] != 1 {
				t.Fatalf("step %d: interior cell %d = %d under rule 255, want 1", step, i, cur[i])
			}
		}
	}
}

func TestRule90SingleCell(t *testing.T) {
	e, err := New(9, 4, 90)
	if err != nil {
		t.Fatal(err)
	}
	pattern := make([]uint8, 9)
	pattern[4] = 1
	setCurrent(e, pattern)

	e.Steps(1)

	want := make([]uint8, 9)
	want[3] = 1
	want[5] = 1
	if !slices.Equal(e.Current(), want) {
		t.Fatalf("rule 90 step: got %v, want %v", e.Current(), want)
	}
}

func TestHistoryWindow(t *testing.T) {
	const cells, gens = 12, 6
	e, err := New(cells, gens, 30)
	if err != nil {
		t.Fatal(err)
	}
	initial := append([]uint8(nil), e.Current()...)

	if len(e.Cells()) != cells*gens {
		t.Fatalf("history holds %d values, want %d", len(e.Cells()), cells*gens)
	}
	for y := 0; y < gens-1; y++ {
		for x, v := range e.Cells()[y*cells : (y+1)*cells] {
			if v != 0 {
				t.Fatalf("initial history row %d cell %d = %d, want 0", y, x, v)
			}
		}
	}
	if !slices.Equal(e.Cells()[(gens-1)*cells:], initial) {
		t.Fatal("last history row does not hold the initial generation")
	}

	e.Steps(1)

	if len(e.Cells()) != cells*gens {
		t.Fatalf("history grew to %d values after a step", len(e.Cells()))
	}
	if !slices.Equal(e.Cells()[(gens-2)*cells:(gens-1)*cells], initial) {
		t.Fatal("initial generation not shifted up into the second-to-last row")
	}
	if !slices.Equal(e.Cells()[(gens-1)*cells:], e.Current()) {
		t.Fatal("last history row does not hold the newest generation")
	}

	e.Steps(25)
	if len(e.Cells()) != cells*gens {
		t.Fatalf("history holds %d values after many steps, want %d", len(e.Cells()), cells*gens)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	pattern := []uint8{0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0}

	run := func() []uint8 {
		e, err := New(len(pattern), 4, 110)
		if err != nil {
			t.Fatal(err)
		}
		setCurrent(e, pattern)
		e.Steps(1)
		return append([]uint8(nil), e.Current()...)
	}

	first := run()
	second := run()
	if !slices.Equal(first, second) {
		t.Fatalf("same input produced different generations: %v vs %v", first, second)
	}
}

func TestResetDeterministic(t *testing.T) {
	e, err := New(32, 8, 110)
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(2024)
	first := append([]uint8(nil), e.Cells()...)
	e.Steps(7)
	e.Reset(2024)
	if !slices.Equal(first, e.Cells()) {
		t.Fatal("Reset with the same seed produced a different history")
	}
	if e.Generation() != 0 {
		t.Fatalf("Reset left generation counter at %d", e.Generation())
	}
}

func TestGenerationCounter(t *testing.T) {
	e, err := New(16, 4, 30)
	if err != nil {
		t.Fatal(err)
	}
	e.Steps(3).Steps(2)
	if e.Generation() != 5 {
		t.Fatalf("after Steps(3).Steps(2) counter = %d, want 5", e.Generation())
	}
}

func TestParametersExposeRule(t *testing.T) {
	e, err := New(16, 4, 110)
	if err != nil {
		t.Fatal(err)
	}
	snap := e.Parameters()
	if len(snap.Params) != 1 || snap.Params[0].Key != "rule" || snap.Params[0].Value != "110" {
		t.Fatalf("unexpected parameter snapshot: %+v", snap)
	}
}
