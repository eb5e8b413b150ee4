package life

import "strconv"

// Config controls the board extent and edge behavior.
type Config struct {
	MinX int32
	MaxX int32
	MinY int32
	MaxY int32
	Wrap bool

	Seed int64
}

// DefaultConfig returns the standard configuration: a 256x256 toroidal board
// centered on the origin.
func DefaultConfig() Config {
	return Config{
		MinX: -128,
		MaxX: 127,
		MinY: -128,
		MaxY: 127,
		Wrap: true,
		Seed: 1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["min_x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MinX = int32(parsed)
		}
	}
	if v, ok := cfg["max_x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MaxX = int32(parsed)
		}
	}
	if v, ok := cfg["min_y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MinY = int32(parsed)
		}
	}
	if v, ok := cfg["max_y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MaxY = int32(parsed)
		}
	}
	if c.MaxX < c.MinX {
		c.MaxX = c.MinX
	}
	if c.MaxY < c.MinY {
		c.MaxY = c.MinY
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
