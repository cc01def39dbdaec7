// Package config loads lumoc settings from TOML or YAML files with
// environment variable overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/CrimsonDemon567/lumo/internal/parser"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is prepended to the upper-cased key names when
// looking up environment overrides, e.g. LUMOC_MAX_DEPTH.
const DefaultEnvPrefix = "LUMOC"

// Config holds driver settings.
type Config struct {
	MaxDepth int    `toml:"max_depth" yaml:"max_depth"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	Color    bool   `toml:"color" yaml:"color"`
	Jobs     int    `toml:"jobs" yaml:"jobs"`
}

// LoadOptions controls how a file is loaded.
type LoadOptions struct {
	Format    Format
	EnvPrefix string // empty disables environment overrides
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxDepth: parser.DefaultMaxDepth,
		LogLevel: "info",
		Color:    true,
		Jobs:     runtime.NumCPU(),
	}
}

// Load reads path (if non-empty), applies LUMOC_* overrides and validates.
func Load(path string) (Config, error) {
	return LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: DefaultEnvPrefix})
}

// LoadWithOptions is Load with an explicit format and env prefix.
func LoadWithOptions(path string, opts LoadOptions) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		format := opts.Format
		if format == FormatAuto {
			format, err = detectFormat(path)
			if err != nil {
				return Config{}, err
			}
		}
		if err := decode(data, format, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if opts.EnvPrefix != "" {
		if err := cfg.applyEnv(opts.EnvPrefix); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("config %s: cannot detect format from extension", path)
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
	return fmt.Errorf("unsupported format %s", format)
}

func (c *Config) applyEnv(prefix string) error {
	lookup := func(key string) (string, bool) {
		return os.LookupEnv(prefix + "_" + key)
	}

	if v, ok := lookup("MAX_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_MAX_DEPTH: %w", prefix, err)
		}
		c.MaxDepth = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s_COLOR: %w", prefix, err)
		}
		c.Color = b
	}
	if v, ok := lookup("JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_JOBS: %w", prefix, err)
		}
		c.Jobs = n
	}
	return nil
}

// Validate rejects settings the driver cannot run with.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.Jobs <= 0 {
		return fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// ParserOptions returns parser options matching the config.
func (c Config) ParserOptions(logger *slog.Logger) parser.Options {
	return parser.Options{MaxDepth: c.MaxDepth, Logger: logger}
}
