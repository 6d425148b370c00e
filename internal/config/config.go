package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"paisatrack/budget-csv/internal/logging"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists, first
// in the current directory and then in the parent.
func LoadEnv() {
	envOnce.Do(func() {
		log := logging.GetLogger()

		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				log.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).Warn("Error loading .env file")
			return
		}
		log.Info("Loaded environment variables",
			logging.Field{Key: logging.FieldFile, Value: envFile})
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLogging builds the application logger from the loaded
// configuration and installs it as the process default.
func ConfigureLogging(config *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
	logging.SetDefault(logger)
	return logger
}
