package daynight

import (
	"strconv"

	"daynight/internal/core"
)

// Fill mode names accepted by Config.Fill.
const (
	FillModeSplit  = "split"
	FillModeDay    = "day"
	FillModeNight  = "night"
	FillModeRandom = "random"
)

// Config controls the day/night simulation setup.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Fill selects the initial grid pattern.
	Fill string

	// ExtraEntities scatters additional seeded-random entities on top of
	// the default day/night pair.
	ExtraEntities int

	// UseBatch selects the batch step path when the world is driven
	// through the Sim interface.
	UseBatch bool
}

// DefaultConfig returns the standard configuration: a split grid with the
// classic two-entity duel.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 128,
		Seed:   1337,
		Fill:   FillModeSplit,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch v {
		case FillModeSplit, FillModeDay, FillModeNight, FillModeRandom:
			c.Fill = v
		}
	}
	if v, ok := cfg["entities"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ExtraEntities = parsed
		}
	}
	if v, ok := cfg["batch"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseBatch = parsed
		}
	}
	return c
}

// fillRule resolves the configured fill mode to a grid fill rule.
func (c Config) fillRule() core.FillRule {
	switch c.Fill {
	case FillModeDay:
		return core.FillUniform(core.Day)
	case FillModeNight:
		return core.FillUniform(core.Night)
	case FillModeRandom:
		return core.FillRandom(c.Seed)
	default:
		return core.FillSplit(c.Width)
	}
}
