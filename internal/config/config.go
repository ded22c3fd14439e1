package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config is the resolved user configuration.
type Config struct {
	Settings    string `mapstructure:"settings" yaml:"settings"`
	Templates   string `mapstructure:"templates" yaml:"templates"`
	NPM         string `mapstructure:"npm" yaml:"npm"`
	SkipInstall bool   `mapstructure:"skip_install" yaml:"skip_install"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
}

// Dir returns the config directory (~/.incubator/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", HomeDirName)
	}
	return filepath.Join(home, HomeDirName)
}

// FilePath returns the default config file path (~/.incubator/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Manager merges the config file, environment and bound flags. Precedence
// follows viper: flag, env, file, default.
type Manager struct {
	v    *viper.Viper
	path string
}

// NewManager creates a Manager reading path. An empty path uses FilePath.
func NewManager(path string) *Manager {
	if path == "" {
		path = FilePath()
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := NewDefaultConfig()
	v.SetDefault(KeySettings, def.Settings)
	v.SetDefault(KeyTemplates, def.Templates)
	v.SetDefault(KeyNPM, def.NPM)
	v.SetDefault(KeySkipInstall, def.SkipInstall)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	return &Manager{v: v, path: path}
}

// Path returns the config file the Manager reads and writes.
func (m *Manager) Path() string {
	return m.path
}

// BindFlag makes a command-line flag override key when it is set.
func (m *Manager) BindFlag(key string, flag *pflag.Flag) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if flag == nil {
		return nil
	}
	return m.v.BindPFlag(key, flag)
}

// Load reads the config file, if present, and returns the merged, validated
// configuration. A missing file is not an error.
func (m *Manager) Load() (*Config, error) {
	if err := m.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, m.path, err)
		}
	}

	cfg := &Config{
		Settings:    m.v.GetString(KeySettings),
		Templates:   m.v.GetString(KeyTemplates),
		NPM:         m.v.GetString(KeyNPM),
		SkipInstall: m.v.GetBool(KeySkipInstall),
		LogLevel:    strings.ToLower(m.v.GetString(KeyLogLevel)),
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns a config value by key as a string.
func (m *Manager) Get(key string) (string, error) {
	if !slices.Contains(Keys(), key) {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return m.v.GetString(key), nil
}

// Set writes a key-value pair to the config file, creating it if needed.
func (m *Manager) Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	// Load existing values so writing does not drop them.
	if _, err := m.Load(); err != nil {
		return err
	}

	if key == KeySkipInstall {
		b, err := parseBool(value)
		if err != nil {
			return &ValidationErrors{Errors: []ValidationError{{Field: key, Message: "must be true or false", Value: value}}}
		}
		m.v.Set(key, b)
	} else {
		m.v.Set(key, value)
	}

	cfg := &Config{
		Settings:    m.v.GetString(KeySettings),
		Templates:   m.v.GetString(KeyTemplates),
		NPM:         m.v.GetString(KeyNPM),
		SkipInstall: m.v.GetBool(KeySkipInstall),
		LogLevel:    strings.ToLower(m.v.GetString(KeyLogLevel)),
	}
	if err := Validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(m.path), err)
	}
	if err := m.v.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
