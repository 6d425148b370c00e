package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"paisatrack/budget-csv/cmd/categorize"
	"paisatrack/budget-csv/cmd/cycle"
	"paisatrack/budget-csv/cmd/parse"
	"paisatrack/budget-csv/cmd/pdf"
	"paisatrack/budget-csv/cmd/reconcile"
	"paisatrack/budget-csv/cmd/report"
	"paisatrack/budget-csv/cmd/root"
)

func init() {
	// Load environment variables before any logging happens, then set the
	// global log level so every logger created later inherits it.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()
	categorize.Init()
	cycle.Init()
	reconcile.Init()
	report.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(pdf.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(cycle.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
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

// configureLogLevelDirectly sets the global logrus level before any logger
// is used, so early log lines respect BUDGET_LOG_LEVEL.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("BUDGET_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
