package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/hwident/internal/output"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("", false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, -1, cfg.SMBIOS.Type)
	})

	t.Run("missing implicit file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "none.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), true)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("overlay", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
format: json
metrics_file: /var/lib/node_exporter/hwident.prom
smbios:
  source: sysfs
  type: 17
log:
  level: debug
  json: true
`), 0o644))

		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "auto", cfg.Color)
		assert.Equal(t, "/var/lib/node_exporter/hwident.prom", cfg.MetricsFile)
		assert.Equal(t, SMBIOSConfig{Source: "sysfs", Type: 17}, cfg.SMBIOS)
		assert.Equal(t, LogConfig{Level: "debug", JSON: true}, cfg.Log)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: csv\ncolor: rainbow\n"), 0o644))

		_, err := LoadConfig(path, true)
		assert.ErrorIs(t, err, output.ErrUnknownFormat)
		assert.ErrorIs(t, err, output.ErrUnknownColor)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: [json\n"), 0o644))

		_, err := LoadConfig(path, true)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"type all", func(c *Config) { c.SMBIOS.Type = 127 }, false},
		{"type out of range", func(c *Config) { c.SMBIOS.Type = 256 }, true},
		{"unknown source", func(c *Config) { c.SMBIOS.Source = "floppy" }, true},
		{"empty level", func(c *Config) { c.Log.Level = "" }, false},
		{"warn level", func(c *Config) { c.Log.Level = "warn" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestOverride(t *testing.T) {
	var format string
	var typ int
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&format, "format", "text", "")
	flags.IntVar(&typ, "type", -1, "")
	require.NoError(t, flags.Parse([]string{"--type", "4"}))

	cfg := DefaultConfig()
	cfg.Format = "yaml"
	override(flags, "format", &cfg.Format, format)
	override(flags, "type", &cfg.SMBIOS.Type, typ)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 4, cfg.SMBIOS.Type)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, LogConfig{Level: "warn", JSON: true})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.True(t, l.Enabled(t.Context(), slog.LevelError))

	_, err = newLogger(&buf, LogConfig{Level: "chatty"})
	assert.Error(t, err)
}
