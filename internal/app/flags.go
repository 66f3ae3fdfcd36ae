package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"snowtrack/internal/sim"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string { return strings.Join(*o, ",") }

// Set appends one override.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides keyed by name; later entries win.
func (o Overrides) Map() map[string]string {
	m := make(map[string]string, len(o))
	for _, kv := range o {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Config represents the command-line parameters for the application.
type Config struct {
	Surface  string
	Size     float64
	Segments int
	Workers  int

	TPS       int
	PressRate int
	Width     int
	Height    int
	HUDWidth  int

	Set Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sim.DefaultConfig()
	return &Config{
		Surface:   d.Surface,
		Size:      float64(d.Size),
		Segments:  d.Segments,
		Workers:   d.Workers,
		TPS:       60,
		PressRate: 30,
		Width:     1280,
		Height:    720,
		HUDWidth:  260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Surface, "surface", c.Surface, "surface preset (snow, sand, mud)")
	fs.Float64Var(&c.Size, "size", c.Size, "world-space edge length of the terrain")
	fs.IntVar(&c.Segments, "segments", c.Segments, "grid cells per side")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for full attribute derives")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PressRate, "press-rate", c.PressRate, "terrain presses per second while moving")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width (0 hides it)")
	fs.Var(&c.Set, "set", "world or vehicle override in key=value form (repeatable)")
}

// World resolves the flags into a world configuration. Values given with
// -set take precedence over the dedicated flags.
func (c *Config) World() sim.Config {
	m := map[string]string{
		"surface":  c.Surface,
		"size":     strconv.FormatFloat(c.Size, 'f', -1, 64),
		"segments": strconv.Itoa(c.Segments),
		"workers":  strconv.Itoa(c.Workers),
	}
	for k, v := range c.Set.Map() {
		m[k] = v
	}
	return sim.FromMap(m)
}
