package config

import (
	"errors"
	"fmt"
	"github.com/fernandosanchezjr/godprng/sources"
)

const (
	ModeInt   = "int"
	ModeBytes = "bytes"

	DefaultCount = 25600
)

var DefaultSources = []string{"dprng", "rand", "crypto"}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Output        string   `yaml:"output,omitempty"`
	Count         int64    `yaml:"count,omitempty"`
	Seed          *uint64  `yaml:"seed,omitempty"`
	Sources       []string `yaml:"sources,omitempty"`
	Mode          string   `yaml:"mode,omitempty"`
	Schedule      string   `yaml:"schedule,omitempty"`
	ServerAddress string   `yaml:"server,omitempty"`
	DBPath        string   `yaml:"db,omitempty"`
	Charts        bool     `yaml:"charts,omitempty"`
}

func Default() *Config {
	return &Config{
		Count:   DefaultCount,
		Sources: append([]string{}, DefaultSources...),
		Mode:    ModeInt,
	}
}

func (c *Config) applyDefaults() {
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if len(c.Sources) == 0 {
		c.Sources = append([]string{}, DefaultSources...)
	}
	if c.Mode == "" {
		c.Mode = ModeInt
	}
}

func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidConfig, c.Count)
	}
	if c.Mode != ModeInt && c.Mode != ModeBytes {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	seen := map[string]bool{}
	for _, name := range c.Sources {
		if !sources.Known(name) {
			return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate source %q", ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	return nil
}
