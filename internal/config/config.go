// Package config loads command settings from an optional YAML file and
// XLSX2MD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "XLSX2MD"
	// FileName is the config file base name searched when none is given.
	FileName = "xlsx2md"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `mapstructure:"level" yaml:"level"`
	// Format is text or json (default text).
	Format string `mapstructure:"format" yaml:"format"`
}

// Config holds the settings of the xlsx2md command.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// EmptyMarker is written in italics for a sheet without rows.
	EmptyMarker string `mapstructure:"empty_marker" yaml:"empty_marker"`

	// XLSCharset is the string encoding of legacy .xls workbooks.
	XLSCharset string `mapstructure:"xls_charset" yaml:"xls_charset"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("empty_marker", "Empty sheet")
	v.SetDefault("xls_charset", "utf-8")
}

// Load reads configuration into v and decodes it. cfgFile, when set, must
// exist; otherwise xlsx2md.yaml is looked up in the working directory and
// in ~/.config/xlsx2md, and a missing file is not an error. It returns the
// config file actually used, or "".
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, v.ConfigFileUsed(), nil
}

// Dump returns the configuration as YAML.
func (c Config) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
