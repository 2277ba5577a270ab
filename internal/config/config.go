package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize   = 14
	DefaultMin    = 15
	DefaultMax    = 95
	DefaultSpeed  = 780
	DefaultPreset = "random"
	DefaultLocale = "en"
	DefaultTheme  = "indigo"
	DefaultAddr   = "127.0.0.1:8080"

	// EnvPrefix prefixes every environment override, e.g. COMBVIZ_SIZE.
	EnvPrefix = "COMBVIZ_"
)

type Config struct {
	Preset   string    `yaml:"preset" env:"PRESET"`
	Input    []float64 `yaml:"input,omitempty" env:"INPUT" envSeparator:","`
	Size     int       `yaml:"size" env:"SIZE"`
	Min      int       `yaml:"min" env:"MIN"`
	Max      int       `yaml:"max" env:"MAX"`
	Seed     int64     `yaml:"seed" env:"SEED"`
	Speed    int       `yaml:"speed" env:"SPEED"`
	Locale   string    `yaml:"locale" env:"LOCALE"`
	Theme    string    `yaml:"theme" env:"THEME"`
	LogLevel string    `yaml:"log_level" env:"LOG_LEVEL"`
	Addr     string    `yaml:"addr" env:"ADDR"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:   DefaultPreset,
		Size:     DefaultSize,
		Min:      DefaultMin,
		Max:      DefaultMax,
		Speed:    DefaultSpeed,
		Locale:   DefaultLocale,
		Theme:    DefaultTheme,
		LogLevel: "info",
		Addr:     DefaultAddr,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from COMBVIZ_* environment variables. Unset
// variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the fields that would otherwise fail deep inside
// generation or playback.
func (c *Config) Validate() error {
	if len(c.Input) == 0 {
		if _, ok := Presets[c.Preset]; !ok {
			return fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(PresetNames(), ", "))
		}
		if c.Size < 2 {
			return fmt.Errorf("size must be at least 2, got %d", c.Size)
		}
	}
	if c.Min >= c.Max {
		return fmt.Errorf("min %d must be below max %d", c.Min, c.Max)
	}
	return nil
}

// Rand returns the random source for input generation. A zero Seed seeds
// from the clock.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Source returns a function producing a fresh input on every call. An
// explicit Input is returned as-is each time; otherwise the preset builds
// one from a single seeded random stream.
func (c *Config) Source() func() []float64 {
	if len(c.Input) > 0 {
		in := append([]float64(nil), c.Input...)
		return func() []float64 { return append([]float64(nil), in...) }
	}
	p := GetPreset(c.Preset)
	if p == nil {
		p = GetPreset(DefaultPreset)
	}
	rng := c.Rand()
	size, min, max := c.Size, c.Min, c.Max
	return func() []float64 {
		return p.Build(rng, size, min, max)
	}
}

// ParseInput parses a comma or space separated list of numbers.
func ParseInput(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse input value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
