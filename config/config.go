package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the simulation runtime configuration, loaded from YAML
type Config struct {
	// TickRate is the fixed simulation rate in Hz
	TickRate int `yaml:"tick_rate"`
	// MaxFrames stops the run after this many ticks; 0 runs until signal
	MaxFrames int64 `yaml:"max_frames"`
	// Seed for the deterministic RNG; 0 derives one from the clock
	Seed uint64 `yaml:"seed"`

	Log LogConfig `yaml:"log"`

	World WorldConfig `yaml:"world"`
}

// LogConfig controls the rolling file logger
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Console    bool   `yaml:"console"`
}

// WorldConfig sizes the generated content
type WorldConfig struct {
	Systems   int `yaml:"systems"`
	Planets   int `yaml:"planets"`
	Hostiles  int `yaml:"hostiles"`
	Asteroids int `yaml:"asteroids"`
	Comets    int `yaml:"comets"`
	Stations  int `yaml:"stations"`

	// SectionalShields switches the player from a layered stack to
	// four directional sections
	SectionalShields bool `yaml:"sectional_shields"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TickRate:  60,
		MaxFrames: 0,
		Seed:      0,
		Log: LogConfig{
			File:       "stardrift.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Console:    false,
		},
		World: WorldConfig{
			Systems:   6,
			Planets:   4,
			Hostiles:  8,
			Asteroids: 12,
			Comets:    3,
			Stations:  1,
		},
	}
}

// Load reads the config file at path, layered over defaults. A missing
// file is not an error; the defaults are returned
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tick_rate out of range: %d", c.TickRate)
	}
	if c.World.Systems < 1 {
		return fmt.Errorf("world.systems must be at least 1: %d", c.World.Systems)
	}
	return nil
}
