package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem/internal/util"
	"holdem/pkg/texasholdem"
)

// Config provides configuration for a table
type Config struct {
	loaded bool

	Players            int    `yaml:"players" envconfig:"players"`
	InitialStack       int    `yaml:"initialStack" envconfig:"initial_stack"`
	Ante               int    `yaml:"ante" envconfig:"ante"`
	SmallBlind         int    `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind           int    `yaml:"bigBlind" envconfig:"big_blind"`
	MinRaise           int    `yaml:"minRaise" envconfig:"min_raise"`
	MaxInvalidAttempts int    `yaml:"maxInvalidAttempts" envconfig:"max_invalid_attempts"`
	Hands              int    `yaml:"hands" envconfig:"hands"`
	Seed               int64  `yaml:"seed" envconfig:"seed"`
	Human              string `yaml:"human" envconfig:"human"`
	Log                struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	cfg := Config{
		Players:            3,
		InitialStack:       100,
		Ante:               opts.Ante,
		SmallBlind:         opts.SmallBlind,
		BigBlind:           opts.BigBlind,
		MinRaise:           opts.MinRaise,
		MaxInvalidAttempts: opts.MaxInvalidAttempts,
		Hands:              10,
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A .env file is loaded first, then the yaml file, which may be missing, then
// HOLDEM_ environment variables override both.
func Load() error {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns an error if the table cannot be played with the configuration
func (c Config) Validate() error {
	if c.Players < 2 || c.Players > texasholdem.MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d", texasholdem.MaxPlayers)
	}

	if c.InitialStack <= 0 {
		return errors.New("initialStack must be > 0")
	}

	if c.Hands < 0 {
		return errors.New("hands must be >= 0")
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}

// Options returns the game options
func (c Config) Options() texasholdem.Options {
	return texasholdem.Options{
		Ante:               c.Ante,
		SmallBlind:         c.SmallBlind,
		BigBlind:           c.BigBlind,
		MinRaise:           c.MinRaise,
		MaxInvalidAttempts: c.MaxInvalidAttempts,
	}
}
