// Package config loads brightpath settings from a YAML file and
// environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Learner  LearnerConfig  `mapstructure:"learner"`
}

type DatabaseConfig struct {
	// Path to the SQLite database file. Empty means the default
	// XDG data path.
	Path string `mapstructure:"path"`
}

type LearnerConfig struct {
	// ID identifies the local learner in single-user setups.
	ID string `mapstructure:"id"`
}

// Load reads configuration from configFile, falling back to
// config.yaml in the working directory or $HOME/.config/brightpath.
// A missing config file is not an error; defaults apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/brightpath")
	}

	v.SetDefault("learner.id", "local")

	if err := v.BindEnv("database.path", "BRIGHTPATH_DB"); err != nil {
		return nil, fmt.Errorf("bind BRIGHTPATH_DB environment variable: %w", err)
	}
	if err := v.BindEnv("learner.id", "BRIGHTPATH_LEARNER"); err != nil {
		return nil, fmt.Errorf("bind BRIGHTPATH_LEARNER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
