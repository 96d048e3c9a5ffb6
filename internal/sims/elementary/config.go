package elementary

import (
	"fmt"
	"strconv"

	"ca-lab/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Cells       int
	Generations int
	Rule        int
	Seed        int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Cells: 256, Generations: 256, Rule: 110, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// A non-integral rule such as "3.5" fails here with ErrInvalidRule.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["cells"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: cell count %q", core.ErrInvalidDimension, v)
		}
		c.Cells = parsed
	}
	if v, ok := cfg["gens"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: generation count %q", core.ErrInvalidDimension, v)
		}
		c.Generations = parsed
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %q is not an integer", core.ErrInvalidRule, v)
		}
		c.Rule = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed %q", core.ErrInvalidArgument, v)
		}
		c.Seed = parsed
	}
	return c, nil
}
