// Package config loads feedscore configuration from rc files, environment
// variables, and flags, in that precedence order via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the feedscore configuration.
type Config struct {
	Root      string   `mapstructure:"root"`
	Patterns  []string `mapstructure:"patterns"`
	Format    string   `mapstructure:"format"`
	Output    string   `mapstructure:"output"`
	Enhanced  bool     `mapstructure:"enhanced"`
	Quiet     bool     `mapstructure:"quiet"`
	Verbose   bool     `mapstructure:"verbose"`
	FailUnder int      `mapstructure:"failUnder"`
}

// LoadConfig loads configuration from various sources.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("patterns", []string{"**/*.json"})
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("enhanced", false)
	viper.SetDefault("failUnder", 0)

	configPaths := []string{".feedscorerc.json", ".feedscorerc.yaml", ".feedscorerc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("FEEDSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.FailUnder < 0 || config.FailUnder > 100 {
		return fmt.Errorf("failUnder must be between 0 and 100, got %d", config.FailUnder)
	}
	if len(config.Patterns) == 0 {
		return fmt.Errorf("at least one event file pattern is required")
	}
	return nil
}
