package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/invoice-forecast/cmd/forecast"
	"fjacquet/invoice-forecast/cmd/insights"
	"fjacquet/invoice-forecast/cmd/risk"
	"fjacquet/invoice-forecast/cmd/root"
	"fjacquet/invoice-forecast/cmd/seasonal"
	"fjacquet/invoice-forecast/cmd/vendors"
	"fjacquet/invoice-forecast/internal/logging"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level directly so every logger created
	// afterwards starts at the right level
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	// 3. Initialize the root command and register subcommands
	root.Init()
	root.Cmd.AddCommand(forecast.Cmd)
	root.Cmd.AddCommand(vendors.Cmd)
	root.Cmd.AddCommand(seasonal.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
	root.Cmd.AddCommand(risk.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
