// Package config materialises Reporters from a declarative document read
// with viper (YAML, TOML or JSON).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/trickstertwo/ereport"
)

// Config is the root of the document.
type Config struct {
	Reporters []ReporterConfig `mapstructure:"reporters"`
}

// ReporterConfig describes one Reporter.
type ReporterConfig struct {
	// Name is the registry key; it is upper-cased.
	Name string `mapstructure:"name"`
	// Env optionally names a variable whose value overrides Level.
	Env string `mapstructure:"env"`
	// Level is the default threshold (default: info).
	Level      string             `mapstructure:"level"`
	Console    ConsoleConfig      `mapstructure:"console"`
	Files      []FileConfig       `mapstructure:"files"`
	Structured []StructuredConfig `mapstructure:"structured"`
}

// ConsoleConfig controls the standard output outlet.
type ConsoleConfig struct {
	// Enabled defaults to true.
	Enabled *bool `mapstructure:"enabled"`
	// Color: auto (default), always or never.
	Color string `mapstructure:"color"`
	// Format: text (default) or json.
	Format string   `mapstructure:"format"`
	Fields []string `mapstructure:"fields"`
}

// FileConfig describes a file outlet.
type FileConfig struct {
	Path     string   `mapstructure:"path"`
	Truncate bool     `mapstructure:"truncate"`
	Format   string   `mapstructure:"format"`
	Fields   []string `mapstructure:"fields"`
}

// StructuredConfig describes an outlet backed by a structured logging library.
type StructuredConfig struct {
	// Backend: zap, zerolog or slog.
	Backend string `mapstructure:"backend"`
	// Target: stdout (default) or stderr.
	Target string `mapstructure:"target"`
	// Console selects the backend's human-readable encoder instead of JSON.
	Console bool     `mapstructure:"console"`
	Fields  []string `mapstructure:"fields"`
}

const (
	FormatText = "text"
	FormatJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	BackendZap     = "zap"
	BackendZerolog = "zerolog"
	BackendSlog    = "slog"

	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Unwrap() []error { return e }

// ReadFile reads path into a fresh viper instance and decodes it.
func ReadFile(path string) (*Config, *viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// Validate checks names, levels and enumerations.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	seen := make(map[string]bool, len(c.Reporters))
	for i, rc := range c.Reporters {
		if strings.TrimSpace(rc.Name) == "" {
			invalid("reporters[%d]: name is required", i)
			continue
		}
		key := ereport.NormalizeName(rc.Name)
		if seen[key] {
			invalid("reporters[%d]: duplicate name %q", i, key)
		}
		seen[key] = true

		if _, err := rc.threshold(); err != nil {
			errs = append(errs, fmt.Errorf("reporters[%d] %s: %w", i, key, err))
		}
		if !oneOf(rc.Console.Color, "", ColorAuto, ColorAlways, ColorNever) {
			invalid("reporters[%d] %s: console.color %q", i, key, rc.Console.Color)
		}
		if err := checkFormat(rc.Console.Format, rc.Console.Fields); err != nil {
			errs = append(errs, fmt.Errorf("reporters[%d] %s: console: %w", i, key, err))
		}
		for j, fc := range rc.Files {
			if strings.TrimSpace(fc.Path) == "" {
				invalid("reporters[%d] %s: files[%d]: path is required", i, key, j)
			}
			if err := checkFormat(fc.Format, fc.Fields); err != nil {
				errs = append(errs, fmt.Errorf("reporters[%d] %s: files[%d]: %w", i, key, j, err))
			}
		}
		for j, sc := range rc.Structured {
			if !oneOf(strings.ToLower(sc.Backend), BackendZap, BackendZerolog, BackendSlog) {
				invalid("reporters[%d] %s: structured[%d]: backend %q", i, key, j, sc.Backend)
			}
			if !oneOf(strings.ToLower(sc.Target), "", TargetStdout, TargetStderr) {
				invalid("reporters[%d] %s: structured[%d]: target %q", i, key, j, sc.Target)
			}
			if _, err := ereport.NewMapFormatter(sc.Fields...); err != nil {
				errs = append(errs, fmt.Errorf("reporters[%d] %s: structured[%d]: %w", i, key, j, err))
			}
		}
	}
	return errs
}

func (rc ReporterConfig) threshold() (ereport.Level, error) {
	if strings.TrimSpace(rc.Level) == "" {
		return ereport.LevelInfo, nil
	}
	return ereport.ParseLevel(rc.Level)
}

func (rc ReporterConfig) consoleEnabled() bool {
	return rc.Console.Enabled == nil || *rc.Console.Enabled
}

func checkFormat(format string, fields []string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		if len(fields) > 0 {
			return fmt.Errorf("%w: fields require format %q", ErrInvalidConfig, FormatJSON)
		}
		return nil
	case FormatJSON:
		_, err := ereport.NewMapFormatter(fields...)
		return err
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, format)
	}
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
