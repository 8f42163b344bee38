package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"plinkotone/internal/audio"
	"plinkotone/internal/sims/plinko"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the runtime parameters shared by the front ends.
// Precedence: flags, then PLINKO_* environment, then .env, then defaults.
type Config struct {
	Preset  string  `env:"PLINKO_PRESET"`
	Scale   string  `env:"PLINKO_SCALE"`
	Width   int     `env:"PLINKO_WIDTH"`
	Height  int     `env:"PLINKO_HEIGHT"`
	Seed    int64   `env:"PLINKO_SEED"`
	Gravity float64 `env:"PLINKO_GRAVITY"`
	Volume  float64 `env:"PLINKO_VOLUME"`
	Mute    bool    `env:"PLINKO_MUTE"`
	TPS     int     `env:"PLINKO_TPS"`
	Board   string  `env:"PLINKO_BOARD"`
	BoardDB string  `env:"PLINKO_BOARD_DB"`
	Saved   string  `env:"PLINKO_SAVED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := plinko.DefaultConfig()
	return &Config{
		Preset:  def.Preset,
		Scale:   def.Scale,
		Width:   def.Width,
		Height:  def.Height,
		Seed:    def.Seed,
		Gravity: def.Gravity,
		Volume:  def.Volume,
		TPS:     60,
		BoardDB: "plinko.db",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(set *flag.FlagSet) {
	set.StringVar(&c.Preset, "preset", c.Preset, "board preset (classic, cascade, funnel, rain, random)")
	set.StringVar(&c.Scale, "scale", c.Scale, "musical scale")
	set.IntVar(&c.Width, "w", c.Width, "board width in pixels")
	set.IntVar(&c.Height, "h", c.Height, "board height in pixels")
	set.Int64Var(&c.Seed, "seed", c.Seed, "seed for jitter and random boards")
	set.Float64Var(&c.Gravity, "gravity", c.Gravity, "gravity multiplier")
	set.Float64Var(&c.Volume, "volume", c.Volume, "master volume 0..1")
	set.BoolVar(&c.Mute, "mute", c.Mute, "start with sound off")
	set.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	set.StringVar(&c.Board, "board", c.Board, "share code to load instead of a preset")
	set.StringVar(&c.BoardDB, "db", c.BoardDB, "sqlite file holding saved boards")
	set.StringVar(&c.Saved, "saved", c.Saved, "name of a saved board to load from -db")
}

// Validate rejects values no front end can run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0,1], got %g", c.Volume)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative, got %g", c.Gravity)
	}
	return nil
}

// SimConfig converts to the session configuration.
func (c *Config) SimConfig() plinko.Config {
	return plinko.Config{
		Width:   c.Width,
		Height:  c.Height,
		Seed:    c.Seed,
		Preset:  c.Preset,
		Scale:   c.Scale,
		Gravity: c.Gravity,
		Volume:  c.Volume,
	}
}

// AudioConfig converts to the audio engine configuration.
func (c *Config) AudioConfig() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !c.Mute
	cfg.MasterVolume = c.Volume
	return cfg
}

// LoadConfig resolves defaults, dotenv files, PLINKO_* variables and finally
// command-line flags. Missing dotenv files are ignored.
func LoadConfig(set *flag.FlagSet, args []string, dotenv ...string) (*Config, error) {
	if err := loadDotenv(dotenv...); err != nil {
		return nil, err
	}
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Bind(set)
	if err := set.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
