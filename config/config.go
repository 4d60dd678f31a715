// Package config loads advent.toml and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath    = "advent.toml"
	DefaultBaseURL = "https://adventofcode.com"

	EnvSession  = "ADVENT_SESSION"
	EnvYear     = "ADVENT_YEAR"
	EnvInputDir = "ADVENT_INPUT_DIR"
	EnvBaseURL  = "ADVENT_BASE_URL"
)

// Config holds the settings for fetching inputs and running days.
type Config struct {
	Year         int
	InputDir     string
	TokenFile    string
	Session      string
	BaseURL      string
	RequestDelay time.Duration
	Timeout      time.Duration
	Verbosity    int
}

// Duration decodes TOML strings such as "3s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type fileConfig struct {
	Year         int      `toml:"year"`
	InputDir     string   `toml:"input_dir"`
	TokenFile    string   `toml:"token_file"`
	Session      string   `toml:"session"`
	BaseURL      string   `toml:"base_url"`
	RequestDelay Duration `toml:"request_delay"`
	Timeout      Duration `toml:"timeout"`
	Verbosity    int      `toml:"verbosity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Year:         2020,
		InputDir:     "inputs",
		TokenFile:    "token.txt",
		BaseURL:      DefaultBaseURL,
		RequestDelay: 3 * time.Second,
		Timeout:      5 * time.Second,
	}
}

// Load reads path on top of Default and applies environment overrides.
// A missing file at DefaultPath is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	switch {
	case err == nil:
		overlay(&cfg, raw, meta)
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlay(cfg *Config, raw fileConfig, meta toml.MetaData) {
	if meta.IsDefined("year") {
		cfg.Year = raw.Year
	}
	if meta.IsDefined("input_dir") {
		cfg.InputDir = strings.TrimSpace(raw.InputDir)
	}
	if meta.IsDefined("token_file") {
		cfg.TokenFile = strings.TrimSpace(raw.TokenFile)
	}
	if meta.IsDefined("session") {
		cfg.Session = strings.TrimSpace(raw.Session)
	}
	if meta.IsDefined("base_url") {
		cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	}
	if meta.IsDefined("request_delay") {
		cfg.RequestDelay = raw.RequestDelay.Duration
	}
	if meta.IsDefined("timeout") {
		cfg.Timeout = raw.Timeout.Duration
	}
	if meta.IsDefined("verbosity") {
		cfg.Verbosity = raw.Verbosity
	}
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvSession)); v != "" {
		cfg.Session = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvYear)); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvYear, err)
		}
		cfg.Year = year
	}
	if v := strings.TrimSpace(os.Getenv(EnvInputDir)); v != "" {
		cfg.InputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return nil
}

// Validate reports settings that cannot work.
func Validate(cfg Config) error {
	if cfg.Year < 2015 {
		return fmt.Errorf("invalid year: %d", cfg.Year)
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if cfg.RequestDelay < 0 || cfg.Timeout < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}
