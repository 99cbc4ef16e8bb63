// Package config provides Viper-based hierarchical configuration
// management plus .env loading for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var once sync.Once

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Forecast struct {
		HorizonDays         int     `mapstructure:"horizon_days" yaml:"horizon_days"`
		MovingAverageWindow int     `mapstructure:"moving_average_window" yaml:"moving_average_window"`
		SeasonalityStrength float64 `mapstructure:"seasonality_strength" yaml:"seasonality_strength"`
	} `mapstructure:"forecast" yaml:"forecast"`

	Vendor struct {
		SeasonalityStrength float64 `mapstructure:"seasonality_strength" yaml:"seasonality_strength"`
	} `mapstructure:"vendor" yaml:"vendor"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config.yaml, then INVOICE_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.invoice-forecast")
	v.AddConfigPath(".invoice-forecast")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file should not be fatal; defaults and
			// env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("forecast.horizon_days", 30)
	v.SetDefault("forecast.moving_average_window", 7)
	v.SetDefault("forecast.seasonality_strength", 0.3)

	v.SetDefault("vendor.seasonality_strength", 0.4)

	v.SetDefault("data.directory", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("invalid csv delimiter: %q (must be a single character)", config.CSV.Delimiter)
	}
	if config.Forecast.HorizonDays <= 0 {
		return fmt.Errorf("forecast horizon must be positive, got %d", config.Forecast.HorizonDays)
	}
	if config.Forecast.MovingAverageWindow <= 0 {
		return fmt.Errorf("moving average window must be positive, got %d", config.Forecast.MovingAverageWindow)
	}
	return nil
}

// ConfigureLogging applies a configuration's log settings to a logrus
// logger and returns it.
func ConfigureLogging(logger *logrus.Logger, config *Config) *logrus.Logger {
	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger
}

// LoadEnv loads environment variables from a .env file if one exists in
// the current or parent directory.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
