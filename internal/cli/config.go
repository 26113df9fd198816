package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/zenithax-cc/hwident/internal/collector/smbios"
	"github.com/zenithax-cc/hwident/internal/output"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

const AppName = "hwident"

type Config struct {
	Format      string       `yaml:"format"`
	Output      string       `yaml:"output"`
	MetricsFile string       `yaml:"metrics_file"`
	Color       string       `yaml:"color"`
	SMBIOS      SMBIOSConfig `yaml:"smbios"`
	CPUID       CPUIDConfig  `yaml:"cpuid"`
	Log         LogConfig    `yaml:"log"`
}

type SMBIOSConfig struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
	Type   int    `yaml:"type"`
}

type CPUIDConfig struct {
	File string `yaml:"file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Format: string(output.FormatText),
		Color:  string(output.ColorAuto),
		SMBIOS: SMBIOSConfig{
			Source: string(smbios.SourceAuto),
			Type:   -1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultConfigPath is $XDG_CONFIG_HOME/hwident/config.yaml, or "" when no
// user config directory can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// LoadConfig overlays the YAML file at path on the defaults. A missing file
// is only an error when the path was given explicitly.
func LoadConfig(path string, explicit bool) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if !explicit && !utils.FileExists(path) {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := output.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := smbios.ParseSource(c.SMBIOS.Source); err != nil {
		errs = append(errs, err)
	}
	if _, err := smbios.TypeFilter(c.SMBIOS.Type); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// override copies v into dst when the flag was set on the command line, so
// config file values survive flag defaults.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}
