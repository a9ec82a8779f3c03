package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const DefaultPath = "/run/textsweeper.json"

type Log struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode string  `json:"mode"`
	Addr string  `json:"addr"`
	Seed *uint64 `json:"seed,omitempty"`
	Log  Log     `json:"log"`
}

func Default() Config {
	return Config{
		Mode: "production",
		Addr: ":8080",
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	seed := "random"
	if c.Seed != nil {
		seed = strconv.FormatUint(*c.Seed, 10)
	}
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"seed":             seed,
		"log_file":         c.Log.File,
		"log_level":        c.Log.Level,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

/*
Load builds the configuration from defaults, the JSON file at path and
finally the TEXTSWEEPER_* environment variables. When required is false a
missing file is skipped.
*/
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if err := ReadConfig(path, &cfg); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if mode, ok := os.LookupEnv("TEXTSWEEPER_MODE"); ok {
		cfg.Mode = mode
	}
	if addr, ok := os.LookupEnv("TEXTSWEEPER_ADDR"); ok {
		cfg.Addr = addr
	}
	if file, ok := os.LookupEnv("TEXTSWEEPER_LOG_FILE"); ok {
		cfg.Log.File = file
	}
	if level, ok := os.LookupEnv("TEXTSWEEPER_LOG_LEVEL"); ok {
		cfg.Log.Level = level
	}
	if seedStr, ok := os.LookupEnv("TEXTSWEEPER_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert TEXTSWEEPER_SEED to uint64: %w", err)
		}
		cfg.Seed = &seed
	}
	return nil
}
