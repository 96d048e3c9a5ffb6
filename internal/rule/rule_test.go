package rule

import (
	"errors"
	"testing"

	"ca-lab/internal/core"
)

func TestBinaryRoundTrip(t *testing.T) {
	for n := 0; n <= 255; n++ {
		bits, err := Binary(n, 8)
		if err != nil {
			t.Fatalf("Binary(%d, 8): %v", n, err)
		}
		if len(bits) != 8 {
			t.Fatalf("Binary(%d, 8) returned %d bits", n, len(bits))
		}
		back := 0
		for _, b := range bits {
			back = back<<1 | int(b)
		}
		if back != n {
			t.Fatalf("round trip %d -> %v -> %d", n, bits, back)
		}
	}
}

func TestBinaryBigEndian(t *testing.T) {
	bits, err := Binary(1, 8)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 0, 0, 0, 0, 0, 1}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("Binary(1, 8) = %v, want %v", bits, want)
		}
	}
}

func TestBinaryRejectsBadInput(t *testing.T) {
	if _, err := Binary(-1, 8); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("negative number: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Binary(256, 8); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("oversized number: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Binary(1, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("zero width: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Binary(255, 8); err != nil {
		t.Fatalf("255 fits in 8 bits: %v", err)
	}
}

func TestTableRejectsBadRules(t *testing.T) {
	for _, n := range []int{-1, 256, 1000} {
		if _, err := Table(n); !errors.Is(err, core.ErrInvalidRule) {
			t.Fatalf("Table(%d) error = %v, want ErrInvalidRule", n, err)
		}
	}
}

func TestTableIndexing(t *testing.T) {
	// Rule 2 maps only the (0,0,1) neighbourhood to a live cell.
	table, err := Table(2)
	if err != nil {
		t.Fatal(err)
	}
	for idx, v := range table {
		want := uint8(0)
		if idx == 1 {
			want = 1
		}
		if v != want {
			t.Fatalf("rule 2 table[%d] = %d, want %d", idx, v, want)
		}
	}

	// Rule 90 is the XOR of the two neighbours.
	table, err = Table(90)
	if err != nil {
		t.Fatal(err)
	}
	for idx := 0; idx < 8; idx++ {
		left := uint8(idx >> 2 & 1)
		right := uint8(idx & 1)
		if table[idx] != left^right {
			t.Fatalf("rule 90 table[%d] = %d, want %d", idx, table[idx], left^right)
		}
	}
}
