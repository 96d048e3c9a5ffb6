// Package rule decodes Wolfram rule numbers into their binary form and the
// neighbourhood lookup table used by the one-dimensional automaton.
package rule

import (
	"fmt"

	"ca-lab/internal/core"
)

// Binary returns the bits-wide big-endian binary representation of n as a
// slice of 0/1 values. Negative numbers and numbers that do not fit in the
// requested width are ErrInvalidArgument.
func Binary(n, bits int) ([]uint8, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("%w: bit width %d", core.ErrInvalidArgument, bits)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative number %d", core.ErrInvalidArgument, n)
	}
	if bits < 63 && n > (1<<bits)-1 {
		return nil, fmt.Errorf("%w: %d does not fit in %d bits", core.ErrInvalidArgument, n, bits)
	}
	out := make([]uint8, bits)
	for i := bits - 1; i >= 0; i-- {
		out[i] = uint8(n & 1)
		n >>= 1
	}
	return out, nil
}

// Table expands a rule number in [0, 255] into the lookup table for the
// eight (left, middle, right) neighbourhoods. The table is indexed by the
// triple packed as left<<2 | middle<<1 | right, so index 7 corresponds to
// (1,1,1) and receives the most significant bit of the rule number.
func Table(n int) ([8]uint8, error) {
	var table [8]uint8
	if n < 0 || n > 255 {
		return table, fmt.Errorf("%w: %d not in [0, 255]", core.ErrInvalidRule, n)
	}
	bits, err := Binary(n, 8)
	if err != nil {
		return table, err
	}
	for i, b := range bits {
		table[7-i] = b
	}
	return table, nil
}
