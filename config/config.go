// Package config loads session settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tkahng/hanoi"
	"gopkg.in/yaml.v3"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// StartPeg is the peg holding every disc at the start.
	StartPeg string `yaml:"start_peg"`
	// ExitOnWin ends the session as soon as the puzzle is solved.
	ExitOnWin bool   `yaml:"exit_on_win"`
	Color     string `yaml:"color"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		StartPeg:  hanoi.PegLeft.String(),
		ExitOnWin: false,
		Color:     ColorAuto,
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if _, err := hanoi.ParsePeg(c.StartPeg); err != nil {
		errs = append(errs, fmt.Errorf("start_peg: %w", err))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: unknown mode %q", c.Color))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Start returns the parsed start peg.
func (c Config) Start() (hanoi.Peg, error) {
	return hanoi.ParsePeg(c.StartPeg)
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
