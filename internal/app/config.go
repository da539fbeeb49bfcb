package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"life-table/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Backend      string        `json:"backend"`
	SeedFile     string        `json:"seed_file"`
	Pattern      string        `json:"pattern"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	WindowWidth  int           `json:"window_width"`
	WindowHeight int           `json:"window_height"`
	Scale        int           `json:"scale"`
	Tick         time.Duration `json:"tick"`
	TPS          int           `json:"tps"`
	RNGSeed      int64         `json:"rng_seed"`
	Density      float64       `json:"density"`
	NoRecenter   bool          `json:"no_recenter"`
	LogFile      string        `json:"log_file"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Backend:      BackendAuto,
		Pattern:      "default",
		WindowWidth:  640,
		WindowHeight: 480,
		Scale:        4,
		Tick:         time.Second,
		TPS:          60,
		RNGSeed:      42,
		Density:      0.15,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "display backend: auto, pixel or terminal")
	fs.StringVar(&c.SeedFile, "seed-file", c.SeedFile, "pattern file to seed the grid from")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern used when no seed file is given")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 fits the display)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (0 fits the display)")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "pixel window width")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "pixel window height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "pixel window updates per second")
	fs.Int64Var(&c.RNGSeed, "rng-seed", c.RNGSeed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random pattern")
	fs.BoolVar(&c.NoRecenter, "no-recenter", c.NoRecenter, "keep the seed where it was loaded")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "file receiving log output while the terminal backend runs")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with settings; command-line flags take precedence")
}

// LoadFile overlays the settings stored as JSON in filename onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("grid size %dx%d must not be negative", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale %d must be positive", c.Scale)
	case c.WindowWidth < c.Scale || c.WindowHeight < c.Scale:
		return errors.Errorf("window %dx%d is smaller than one cell at scale %d", c.WindowWidth, c.WindowHeight, c.Scale)
	case c.Tick <= 0:
		return errors.Errorf("tick %v must be positive", c.Tick)
	case c.TPS <= 0:
		return errors.Errorf("tps %d must be positive", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v must be within [0, 1]", c.Density)
	}
	return nil
}

// Options returns the settings handed to the backend.
func (c *Config) Options() core.Options {
	return core.Options{
		Title:        "life-table",
		WindowWidth:  c.WindowWidth,
		WindowHeight: c.WindowHeight,
		Scale:        c.Scale,
		TPS:          c.TPS,
		LogFile:      c.LogFile,
	}
}
