// Package config loads the runtime's smashrt.toml manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the runtime looks for when discovering
// configuration.
const ManifestName = "smashrt.toml"

// Clock mode names accepted by [timer].
const (
	ClockReal    = "real"
	ClockVirtual = "virtual"
)

// Config is the full runtime configuration.
type Config struct {
	Scheduler SchedulerConfig `toml:"scheduler"`
	Fetch     FetchConfig     `toml:"fetch"`
	Timer     TimerConfig     `toml:"timer"`
}

// SchedulerConfig bounds the async worker pool.
type SchedulerConfig struct {
	MaxWorkers int `toml:"max_workers"`
}

// FetchConfig configures the mock fetch adapter.
type FetchConfig struct {
	MockHost string `toml:"mock_host"`
}

// TimerConfig selects the timer clock.
type TimerConfig struct {
	Clock string `toml:"clock"`
}

// Default returns the configuration used when no manifest is found.
func Default() Config {
	return Config{
		Scheduler: SchedulerConfig{MaxWorkers: 128},
		Fetch:     FetchConfig{MockHost: "example.com"},
		Timer:     TimerConfig{Clock: ClockReal},
	}
}

// Load reads a manifest file over the defaults; keys the file omits keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Scheduler.MaxWorkers < 0 {
		return fmt.Errorf("scheduler.max_workers must not be negative (got %d)", c.Scheduler.MaxWorkers)
	}
	switch c.Timer.Clock {
	case ClockReal, ClockVirtual:
		return nil
	default:
		return fmt.Errorf("timer.clock must be %q or %q (got %q)", ClockReal, ClockVirtual, c.Timer.Clock)
	}
}

// Find walks up from startDir looking for a smashrt.toml manifest. It
// returns the path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest manifest above startDir, falling back to the
// defaults when none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
