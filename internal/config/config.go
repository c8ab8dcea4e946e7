package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hookward/ward/internal/audit"
	"github.com/hookward/ward/internal/safety"
)

// Config holds the application configuration. Everything is optional: with no
// config file present the guard runs with the built-in rule sets and the
// default log location, which is the compatibility baseline.
type Config struct {
	LogPath string      `mapstructure:"log_path"` // audit log file
	Model   string      `mapstructure:"model"`    // model for `ward explain`
	APIKey  string      `mapstructure:"api_key"`  // Anthropic API key for `ward explain`
	Rules   RulesConfig `mapstructure:"rules"`
}

// RulesConfig appends project-specific rules to the built-in lists. The
// built-ins are always active and evaluated first; configuration is additive
// only, so a broken config file can never disable the guard.
type RulesConfig struct {
	Commands []safety.Rule `mapstructure:"commands"`
	Paths    []safety.Rule `mapstructure:"paths"`
}

const DefaultModel = "claude-haiku-4-5-20251001"

func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ward"), nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func Load() (*Config, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("log_path", audit.DefaultLogPath)
	v.SetDefault("model", DefaultModel)

	// Allow environment variable overrides
	v.SetEnvPrefix("WARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found is okay, we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func Save(cfg *Config) error {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	v := viper.New()
	v.Set("log_path", cfg.LogPath)
	v.Set("model", cfg.Model)
	if cfg.APIKey != "" {
		v.Set("api_key", cfg.APIKey)
	}
	if len(cfg.Rules.Commands) > 0 {
		v.Set("rules.commands", cfg.Rules.Commands)
	}
	if len(cfg.Rules.Paths) > 0 {
		v.Set("rules.paths", cfg.Rules.Paths)
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func ConfigExists() bool {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// CommandRules returns the effective command denylist: built-ins first, then
// any configured additions, in order.
func (c *Config) CommandRules() []safety.Rule {
	return append(safety.DefaultCommandRules(), c.Rules.Commands...)
}

// PathRules returns the effective protected-path list.
func (c *Config) PathRules() []safety.Rule {
	return append(safety.DefaultPathRules(), c.Rules.Paths...)
}

// GetEffectiveAPIKey returns the API key for `ward explain`, preferring the
// standard Anthropic environment variable over the config file.
func (c *Config) GetEffectiveAPIKey() string {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	return c.APIKey
}
