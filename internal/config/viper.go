// Package config provides Viper-based hierarchical configuration: defaults,
// then an optional YAML config file, then BUDGET_-prefixed environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Import struct {
		MaxFileSizeBytes  int64 `mapstructure:"max_file_size_bytes" yaml:"max_file_size_bytes"`
		MaxHeaderScanRows int   `mapstructure:"max_header_scan_rows" yaml:"max_header_scan_rows"`
	} `mapstructure:"import" yaml:"import"`

	Budget struct {
		DefaultSalaryCreditDay int `mapstructure:"default_salary_credit_day" yaml:"default_salary_credit_day"`
	} `mapstructure:"budget" yaml:"budget"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Store struct {
		SettingsFile string `mapstructure:"settings_file" yaml:"settings_file"`
		ExpensesFile string `mapstructure:"expenses_file" yaml:"expenses_file"`
	} `mapstructure:"store" yaml:"store"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-csv")
	v.AddConfigPath(".budget-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Missing or invalid config file is fine; defaults and env vars apply.
	}

	// The API key is always read from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("import.max_file_size_bytes", int64(5*1024*1024))
	v.SetDefault("import.max_header_scan_rows", 10)

	v.SetDefault("budget.default_salary_credit_day", 1)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("store.settings_file", "")
	v.SetDefault("store.expenses_file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Import.MaxFileSizeBytes < 1 {
		return fmt.Errorf("import.max_file_size_bytes must be positive, got: %d", config.Import.MaxFileSizeBytes)
	}
	if config.Import.MaxHeaderScanRows < 1 {
		return fmt.Errorf("import.max_header_scan_rows must be positive, got: %d", config.Import.MaxHeaderScanRows)
	}

	if config.Budget.DefaultSalaryCreditDay < 1 || config.Budget.DefaultSalaryCreditDay > 31 {
		return fmt.Errorf("budget.default_salary_credit_day must be between 1 and 31, got: %d",
			config.Budget.DefaultSalaryCreditDay)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}
