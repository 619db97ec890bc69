package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPath is where Load looks for the configuration file when the
// CONFIG_FILE environment variable is not set
const DefaultPath = "config.json"

// Defaults for the optional settings
const (
	DefaultTimeout  = 30 * time.Second
	DefaultStrategy = "mrx"
)

// ErrMissingValue indicates a required configuration key that is empty in both
// the configuration file and the environment
var ErrMissingValue = errors.New("missing required configuration value")

// EnvProvider abstracts environment variable lookups so the resolution rules
// can be tested without touching the process environment
type EnvProvider struct {
	LookupEnv func(key string) (string, bool)
}

// Config holds the resolved settings for one scrape run. Values come from the
// JSON configuration file, with environment variables of the same name taking
// precedence key by key
type Config struct {
	StartURL     string // listing page to scrape
	OutputFile   string // path of the RSS file to write
	ProgramTitle string // feed channel title
	ProgramURL   string // feed channel link
	ProgramDesc  string // feed channel description

	UserAgent         string        // User-Agent header sent with every request
	Timeout           time.Duration // per-request timeout
	RequestsPerSecond float64       // request pacing, 0 disables
	Strategy          string        // extraction strategy name
}

// fileConfig mirrors the JSON file layout. All values are strings so the file
// and the environment resolve through the same rules
type fileConfig struct {
	StartURL     string `json:"START_URL"`
	OutputFile   string `json:"OUTPUT_FILE"`
	ProgramTitle string `json:"PROGRAM_TITLE"`
	ProgramURL   string `json:"PROGRAM_URL"`
	ProgramDesc  string `json:"PROGRAM_DESC"`
	UserAgent    string `json:"USER_AGENT"`
	HTTPTimeout  string `json:"HTTP_TIMEOUT"`
	HTTPRPS      string `json:"HTTP_RPS"`
	Strategy     string `json:"STRATEGY"`
}

// Load reads the JSON configuration file at path, applies environment
// overrides and validates the result
func Load(path string, env EnvProvider) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	defer file.Close()

	var fc fileConfig
	if err := json.NewDecoder(file).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return resolve(fc, env)
}

// resolve merges file values with environment overrides, fills in defaults and
// validates the required keys
func resolve(fc fileConfig, env EnvProvider) (*Config, error) {
	cfg := &Config{
		StartURL:     env.valueOr("START_URL", fc.StartURL),
		OutputFile:   env.valueOr("OUTPUT_FILE", fc.OutputFile),
		ProgramTitle: env.valueOr("PROGRAM_TITLE", fc.ProgramTitle),
		ProgramURL:   env.valueOr("PROGRAM_URL", fc.ProgramURL),
		ProgramDesc:  env.valueOr("PROGRAM_DESC", fc.ProgramDesc),
		UserAgent:    env.valueOr("USER_AGENT", fc.UserAgent),
		Timeout:      DefaultTimeout,
		Strategy:     DefaultStrategy,
	}

	required := []struct {
		key   string
		value string
	}{
		{"START_URL", cfg.StartURL},
		{"OUTPUT_FILE", cfg.OutputFile},
		{"PROGRAM_TITLE", cfg.ProgramTitle},
		{"PROGRAM_URL", cfg.ProgramURL},
		{"PROGRAM_DESC", cfg.ProgramDesc},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingValue, r.key)
		}
	}

	if raw := env.valueOr("HTTP_TIMEOUT", fc.HTTPTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTTP_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT must be positive, got %q", raw)
		}
		cfg.Timeout = timeout
	}

	if raw := env.valueOr("HTTP_RPS", fc.HTTPRPS); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTTP_RPS %q: %w", raw, err)
		}
		if rps < 0 {
			return nil, fmt.Errorf("HTTP_RPS must not be negative, got %q", raw)
		}
		cfg.RequestsPerSecond = rps
	}

	if strategy := env.valueOr("STRATEGY", fc.Strategy); strategy != "" {
		cfg.Strategy = strings.ToLower(strategy)
	}

	return cfg, nil
}

// valueOr returns the environment value for key when it is set and non-empty,
// otherwise fallback
func (e EnvProvider) valueOr(key, fallback string) string {
	if e.LookupEnv == nil {
		return fallback
	}
	if value, ok := e.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
