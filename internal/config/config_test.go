package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 30, cfg.Forecast.HorizonDays)
	assert.Equal(t, 7, cfg.Forecast.MovingAverageWindow)
	assert.Equal(t, 0.3, cfg.Forecast.SeasonalityStrength)
	assert.Equal(t, 0.4, cfg.Vendor.SeasonalityStrength)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("INVOICE_FORECAST_HORIZON_DAYS", "60")
	t.Setenv("INVOICE_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Forecast.HorizonDays)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfig_InvalidEnvValues(t *testing.T) {
	t.Setenv("INVOICE_LOG_LEVEL", "shouting")
	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.Forecast.HorizonDays = 30
		cfg.Forecast.MovingAverageWindow = 7
		return cfg
	}

	assert.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "nope" }},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }},
		{name: "multi-char delimiter", mutate: func(c *Config) { c.CSV.Delimiter = ",," }},
		{name: "zero horizon", mutate: func(c *Config) { c.Forecast.HorizonDays = 0 }},
		{name: "negative window", mutate: func(c *Config) { c.Forecast.MovingAverageWindow = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLogging(logrus.New(), cfg)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok, "formatter should be JSONFormatter")

	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	logger = ConfigureLogging(logrus.New(), cfg)
	assert.Equal(t, logrus.WarnLevel, logger.Level)
	_, ok = logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok, "formatter should be TextFormatter")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("INVOICE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("INVOICE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("INVOICE_TEST_MISSING", "fallback"))
}
