package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/artisanexperiences/vetter/internal/fs"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitInvalidArguments
	ExitConfigurationError
	ExitValidationFailed
	ExitMissingTarget
)

const (
	// ConfigName is the project config file name without extension.
	ConfigName = "vetter"

	// EnvPrefix prefixes environment overrides, e.g. VETTER_LOG_LEVEL.
	EnvPrefix = "VETTER"

	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the project configuration in vetter.yaml.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Format   string `mapstructure:"format" yaml:"format"`
	// Messages replaces the built-in default message of a rule.
	Messages map[string]string `mapstructure:"messages" yaml:"messages,omitempty"`
}

// Default returns the configuration used when no vetter.yaml exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   FormatText,
	}
}

// RuleMessages converts the configured default messages for the registry.
func (c *Config) RuleMessages() map[string]validation.Message {
	if len(c.Messages) == 0 {
		return nil
	}
	out := make(map[string]validation.Message, len(c.Messages))
	for name, text := range c.Messages {
		out[name] = validation.MessageFromText(text)
	}
	return out
}

// Validate checks the configured values are usable.
func (c *Config) Validate() error {
	var errs []error
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("format must be one of [%s %s], got %q", FormatText, FormatJSON, c.Format))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		errs = append(errs, fmt.Errorf("log_level must be one of [debug info warn error fatal], got %q", c.LogLevel))
	}
	for name, text := range c.Messages {
		if _, err := validation.ParseMessage(text); err != nil {
			errs = append(errs, fmt.Errorf("messages.%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Load reads the project configuration. An explicit file must exist;
// otherwise vetter.yaml is searched for in dir and then the global config
// directory, and defaults apply when neither has one. VETTER_* environment
// variables override file values.
func Load(dir, file string) (*Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("format", defaults.Format)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		if dir != "" {
			v.AddConfigPath(dir)
		}
		if globalDir, err := GetGlobalConfigDir(); err == nil {
			v.AddConfigPath(globalDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Save writes config to dir/vetter.yaml.
func Save(fsys fs.FS, dir string, config *Config) error {
	content, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := fsys.WriteFile(filepath.Join(dir, ConfigName+".yaml"), content, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// GetGlobalConfigDir returns the global config directory
func GetGlobalConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vetter"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "vetter"), nil
}
