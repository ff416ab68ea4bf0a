// internal/config/config.go
//
// Runtime configuration for the simulator.
// Values come from the environment (optionally seeded from a .env file by
// main) and may be overridden by command-line flags.
//
// Environment variables:
//   MONTY_TRIALS=100000          games per door count and strategy
//   MONTY_DOORS=3,4,30,100,200   door counts to simulate
//   MONTY_SEED=0                 base seed; 0 draws a fresh one
//   LOG_LEVEL=info               zerolog level
//   LOG_FORMAT=json              json or console

package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/montyhall/internal/game"
)

// Config holds the simulator settings.
type Config struct {
	Trials     int    `env:"MONTY_TRIALS" envDefault:"100000"`
	DoorCounts []int  `env:"MONTY_DOORS" envDefault:"3,4,30,100,200" envSeparator:","`
	Seed       int64  `env:"MONTY_SEED" envDefault:"0"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// BindFlags registers flags on fs that override the loaded values.
// Flag defaults are the current values, so unset flags change nothing.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Trials, "trials", c.Trials, "games per door count and strategy")
	fs.Var((*intList)(&c.DoorCounts), "doors", "comma-separated door counts")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base random seed (0 draws a fresh one)")
}

// Validate rejects settings the simulator cannot run with.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if len(c.DoorCounts) == 0 {
		return errors.New("at least one door count is required")
	}
	for _, d := range c.DoorCounts {
		if d < game.MinDoors {
			return fmt.Errorf("door count %d is below %d", d, game.MinDoors)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// intList is a flag.Value for comma-separated integers.
type intList []int

func (l *intList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var out []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid door count %q", p)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
