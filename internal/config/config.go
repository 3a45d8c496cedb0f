package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DBPath            string  `toml:"db_path"`
	Timezone          string  `toml:"timezone"`
	DayStartHour      int     `toml:"day_start_hour"`
	NightStartHour    int     `toml:"night_start_hour"`
	MonologueMinHours float64 `toml:"monologue_min_hours"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:            filepath.Join(home, ".config", "chatsum", "chatsum.db"),
		Timezone:          "Local",
		DayStartHour:      6,
		NightStartHour:    18,
		MonologueMinHours: 3,
	}

	cfgPath := filepath.Join(home, ".config", "chatsum", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)

	if cfg.DayStartHour < 0 || cfg.DayStartHour > 23 ||
		cfg.NightStartHour < 0 || cfg.NightStartHour > 23 ||
		cfg.DayStartHour >= cfg.NightStartHour {
		return nil, fmt.Errorf("config: day_start_hour %d must be before night_start_hour %d",
			cfg.DayStartHour, cfg.NightStartHour)
	}

	return cfg, nil
}

// Location resolves the configured timezone. Pinning a zone keeps
// hour and calendar-day analytics reproducible across machines.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MonologueThreshold returns the minimum duration a same-sender run
// must span to count as a monologue.
func (c *Config) MonologueThreshold() time.Duration {
	return time.Duration(c.MonologueMinHours * float64(time.Hour))
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
