package life

import (
	"fmt"
	"strconv"

	"ca-lab/internal/core"
)

// Config holds parameters for the Game of Life simulation.
type Config struct {
	Width  int
	Height int
	// Threshold is the p handed to Randomize on reset: cells start live
	// with probability 1-p.
	Threshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Threshold: 0.5}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values are reported rather than silently replaced so that bad
// input surfaces at construction.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: width %q", core.ErrInvalidDimension, v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: height %q", core.ErrInvalidDimension, v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["p"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: threshold %q", core.ErrInvalidArgument, v)
		}
		c.Threshold = parsed
	}
	return c, nil
}
