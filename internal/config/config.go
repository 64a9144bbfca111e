// Package config loads tool settings from an optional YAML file and
// NOTEDOC_* environment variables, with sane defaults. Command-line flags
// override anything loaded here.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Credentials string `mapstructure:"credentials"`
	Title       string `mapstructure:"title"`
	DBPath      string `mapstructure:"db_path"`
	LogLevel    string `mapstructure:"log_level"`
}

const (
	DefaultTitle  = "New Note"
	DefaultDBPath = "./data/notedoc.db"
)

// Load reads configuration from path, or when path is empty from
// ".notedoc.yaml" in the home directory or the working directory. A missing
// config file is not an error; a broken one is.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("credentials", "")
	v.SetDefault("title", DefaultTitle)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("NOTEDOC")
	v.AutomaticEnv()
	for _, key := range []string{"credentials", "title", "db_path", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".notedoc")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
