package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ocrsift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.12, cfg.Classify.HeaderZone)
	assert.Equal(t, 0.91, cfg.Classify.SignatureZone)
	assert.Equal(t, 390.0, cfg.Classify.LineSpacingMin)
	assert.Equal(t, 750.0, cfg.Classify.LineSpacingMax)
	assert.True(t, cfg.Normalize.UnicodeNFC)
	assert.Equal(t, "ocrsift", cfg.Output.Producer)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
classify:
  header_zone: 0.1
  signature_warn_max_len: 10
log:
  level: debug
workers: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, cfg.Classify.HeaderZone)
	assert.Equal(t, 10, cfg.Classify.SignatureWarnMaxLen)
	assert.Equal(t, 0.91, cfg.Classify.SignatureZone, "unset keys keep defaults")
	assert.Equal(t, 55, cfg.Classify.HeaderWarnMaxLen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "classify: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvWorkers, "8")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Workers)

	t.Setenv(EnvWorkers, "many")
	assert.Error(t, cfg.ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad indent", func(c *Config) { c.Output.Indent = "--" }},
		{"bad thresholds", func(c *Config) { c.Classify.HeaderZone = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Classify.SignatureWarnMaxLen = 10

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "signature_warn_max_len: 10")

	loaded, err := Load(writeConfig(t, out))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
