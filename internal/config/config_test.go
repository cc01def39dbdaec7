package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions("", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 256, cfg.MaxDepth)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "lumoc.toml", `
max_depth = 32
log_level = "debug"
color = false
jobs = 2
`)
	cfg, err := LoadWithOptions(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Config{MaxDepth: 32, LogLevel: "debug", Color: false, Jobs: 2}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "lumoc.yml", "max_depth: 16\nlog_level: warn\n")
	cfg, err := LoadWithOptions(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Color)
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg, err := LoadWithOptions(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFormat(t *testing.T) {
	path := writeFile(t, "settings.conf", "max_depth = 9\n")
	_, err := LoadWithOptions(path, LoadOptions{})
	require.Error(t, err)

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatTOML})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MaxDepth)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	tomlPath := writeFile(t, "a.toml", "max_dpeth = 3\n")
	_, err := LoadWithOptions(tomlPath, LoadOptions{})
	assert.ErrorContains(t, err, "max_dpeth")

	yamlPath := writeFile(t, "a.yaml", "colour: true\n")
	_, err = LoadWithOptions(yamlPath, LoadOptions{})
	assert.ErrorContains(t, err, "colour")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "lumoc.toml", "max_depth = 32\n")
	t.Setenv("LUMOC_MAX_DEPTH", "64")
	t.Setenv("LUMOC_LOG_LEVEL", "error")
	t.Setenv("LUMOC_COLOR", "false")
	t.Setenv("LUMOC_JOBS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{MaxDepth: 64, LogLevel: "error", Color: false, Jobs: 3}, cfg)
}

func TestLoadEnvErrors(t *testing.T) {
	t.Setenv("LUMOC_JOBS", "many")
	_, err := Load("")
	assert.ErrorContains(t, err, "LUMOC_JOBS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, "max_depth"},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = 7
	opts := cfg.ParserOptions(nil)
	assert.Equal(t, 7, opts.MaxDepth)
	assert.Equal(t, "toml", FormatTOML.String())
}
