package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by CFP_ENV,
// with environment variables overriding file values.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		// A missing .env file is normal outside local development
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("CFP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.transactionsPath", "data/transactions.csv")
	v.SetDefault("input.labelsPath", "data/labels.csv")
	v.SetDefault("input.categoriesPath", "")
	v.SetDefault("output.featuresPath", "artifacts/training_set.csv")

	v.SetDefault("logger.level", "info")

	v.SetDefault("featureStore.enabled", false)
	v.SetDefault("featureStore.port", 5432)
	v.SetDefault("featureStore.sslMode", "disable")
	v.SetDefault("featureStore.maxOpenConns", 10)
	v.SetDefault("featureStore.maxIdleConns", 5)
	v.SetDefault("featureStore.connMaxLifetimeMinutes", 5)
	v.SetDefault("featureStore.queryTimeoutSeconds", 30)
}

// getEnvironment determines the environment based on CFP_ENV
func getEnvironment() string {
	env := os.Getenv("CFP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
// for paths and sensitive feature-store settings
func processEnvOverrides(v *viper.Viper) {
	if path := os.Getenv("CFP_TRANSACTIONS_PATH"); path != "" {
		v.Set("input.transactionsPath", path)
	}
	if path := os.Getenv("CFP_LABELS_PATH"); path != "" {
		v.Set("input.labelsPath", path)
	}
	if path := os.Getenv("CFP_CATEGORIES_PATH"); path != "" {
		v.Set("input.categoriesPath", path)
	}
	if path := os.Getenv("CFP_FEATURES_PATH"); path != "" {
		v.Set("output.featuresPath", path)
	}
	if level := os.Getenv("CFP_LOGGER_LEVEL"); level != "" {
		v.Set("logger.level", level)
	}

	if host := os.Getenv("CFP_DB_HOST"); host != "" {
		v.Set("featureStore.host", host)
	}
	if user := os.Getenv("CFP_DB_USERNAME"); user != "" {
		v.Set("featureStore.username", user)
	}
	if pass := os.Getenv("CFP_DB_PASSWORD"); pass != "" {
		v.Set("featureStore.password", pass)
	}
	if name := os.Getenv("CFP_DB_NAME"); name != "" {
		v.Set("featureStore.database", name)
	}
	if sslMode := os.Getenv("CFP_DB_SSL_MODE"); sslMode != "" {
		v.Set("featureStore.sslMode", sslMode)
	}
}
