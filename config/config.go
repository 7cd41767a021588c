// Package config resolves the per-invocation configuration from three
// layers: CLI flags over environment variables over a key=value config
// file over built-in defaults. The result is an immutable struct handed
// to every component; nothing reads configuration from package globals.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lstpsche/openmeteo-cli/render"
)

const (
	// EnvAPIKey overrides the API key.
	EnvAPIKey = "OPENMETEO_API_KEY"
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "OPENMETEO_CONFIG"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	APIKey  string
	Format  render.Format
	Verbose bool
	NoColor bool
	Timeout time.Duration

	// Default location applied when a command gets neither coordinates
	// nor a city.
	City    string
	Country string

	Timezone          string
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Format:   render.FormatHuman,
		Timeout:  30 * time.Second,
		Timezone: "auto",
	}
}

// DefaultPath returns the config file location: $OPENMETEO_CONFIG when
// set, otherwise ~/.config/openmeteo/config.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "openmeteo", "config")
}

// Load resolves configuration from the file at path plus the
// environment. A missing file at the default location is fine; a missing
// file named explicitly by the caller is an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Defaults()

	if path != "" {
		values, err := parseFile(path)
		if err != nil {
			if os.IsNotExist(err) && !explicit {
				values = nil
			} else {
				return cfg, fmt.Errorf("config file %s: %w", path, err)
			}
		}
		if err := cfg.apply(values); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// apply copies recognized file keys onto the config. Unknown keys are an
// error so typos in the file surface instead of silently doing nothing.
func (c *Config) apply(values map[string]string) error {
	for key, value := range values {
		switch key {
		case "api_key":
			c.APIKey = value
		case "format":
			f, err := ParseFormat(value)
			if err != nil {
				return err
			}
			c.Format = f
		case "city":
			c.City = value
		case "country":
			c.Country = value
		case "timezone":
			c.Timezone = value
		case "temperature_unit":
			c.TemperatureUnit = value
		case "wind_speed_unit":
			c.WindSpeedUnit = value
		case "precipitation_unit":
			c.PrecipitationUnit = value
		case "verbose":
			c.Verbose = value == "true" || value == "1"
		case "timeout":
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", value, err)
			}
			c.Timeout = d
		default:
			return fmt.Errorf("unknown key %q", key)
		}
	}
	return nil
}

// ParseFormat converts a format name from the config file or a flag.
func ParseFormat(s string) (render.Format, error) {
	switch s {
	case "human", "":
		return render.FormatHuman, nil
	case "porcelain":
		return render.FormatPorcelain, nil
	case "llm", "compact":
		return render.FormatCompact, nil
	case "raw":
		return render.FormatRaw, nil
	}
	return render.FormatHuman, fmt.Errorf("unknown format %q (valid: human, porcelain, llm, raw)", s)
}

// parseFile reads a key=value file. Blank lines and #-comments are
// skipped; values may be quoted.
func parseFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, found := strings.Cut(text, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected key=value, got %q", line, text)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
