// Package config collects the settings of a snakegrid run from a YAML file,
// a .env file and SNAKE_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
)

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	TickInterval time.Duration `yaml:"tick"`
	// Seed feeds the food placer. Zero picks a time based seed.
	Seed int64 `yaml:"seed"`
	// MaxTicks bounds a headless run. Zero means until the game is over.
	MaxTicks  int  `yaml:"max_ticks"`
	Autopilot bool `yaml:"autopilot"`

	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Width:        20,
		Height:       15,
		TickInterval: 150 * time.Millisecond,
		MaxTicks:     500,
		Autopilot:    true,
		LogLevel:     zerolog.LevelInfoValue,
	}
}

// Load starts from Default, applies the YAML file at path (skipped when
// path is empty), then the given .env files (".env" when none are given;
// a missing one is not an error), then SNAKE_* variables. The result is
// validated before it is returned.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	var result *multierror.Error

	intVar := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	intVar("SNAKE_WIDTH", &c.Width)
	intVar("SNAKE_HEIGHT", &c.Height)
	intVar("SNAKE_MAX_TICKS", &c.MaxTicks)

	if v, ok := os.LookupEnv("SNAKE_TICK"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("SNAKE_TICK: %w", err))
		} else {
			c.TickInterval = d
		}
	}

	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			c.Seed = n
		}
	}

	if v, ok := os.LookupEnv("SNAKE_AUTOPILOT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("SNAKE_AUTOPILOT: %w", err))
		} else {
			c.Autopilot = b
		}
	}

	if v, ok := os.LookupEnv("SNAKE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	return result.ErrorOrNil()
}

var (
	ErrBadTick     = errors.New("tick interval must be positive")
	ErrBadMaxTicks = errors.New("max ticks must not be negative")
)

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Width < engine.MinDimension || c.Height < engine.MinDimension {
		result = multierror.Append(result, &core.DimensionError{
			Width:  c.Width,
			Height: c.Height,
			Min:    engine.MinDimension,
			Err:    core.ErrInvalidDimensions,
		})
	}

	if c.TickInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("%w, got %v", ErrBadTick, c.TickInterval))
	}

	if c.MaxTicks < 0 {
		result = multierror.Append(result, fmt.Errorf("%w, got %d", ErrBadMaxTicks, c.MaxTicks))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
