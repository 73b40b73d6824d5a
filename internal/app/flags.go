package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Fill     string
	Entities int
	Scale    int
	TPS      int
	Seed     int64
	Batch    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "daynight",
		Width:  128,
		Height: 128,
		Fill:   "split",
		Scale:  5,
		TPS:    30,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: split, day, night or random")
	fs.IntVar(&c.Entities, "entities", c.Entities, "extra entities beyond the default pair")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Batch, "batch", c.Batch, "drive the batch step path")
}

// SimOptions converts the flags into the string map consumed by sim
// factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"fill":     c.Fill,
		"entities": strconv.Itoa(c.Entities),
		"batch":    strconv.FormatBool(c.Batch),
	}
}
