package config

import (
	"errors"
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
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	".",
	"./configs",
	"../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// LoadConfig loads configuration from an optional kiosk.yaml plus
// KIOSK_-prefixed environment variables. A kiosk must boot without any
// config file, so a missing file falls back to the defaults.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env file:", err)
	}

	v := viper.New()
	v.SetConfigName("kiosk")
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = getEnvironment()
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return nil
}

// setDefaults sets default values for every setting
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.userFile", "userDB.txt")
	v.SetDefault("data.beverageFile", "beverageDB.txt")
	v.SetDefault("data.systemFile", "systemDB.txt")
	v.SetDefault("data.transactionLog", "transactionlog.txt")
	v.SetDefault("data.depositLog", "depositlog.txt")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("kiosk.defaultPassphrase", "changeme")
}

// getEnvironment determines the environment from KIOSK_ENV
func getEnvironment() string {
	env := os.Getenv("KIOSK_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config
// values for the settings an operator is likely to set per machine
func processEnvOverrides(v *viper.Viper) {
	if dir := os.Getenv("KIOSK_DATA_DIR"); dir != "" {
		v.Set("data.dir", dir)
	}
	if level := os.Getenv("KIOSK_LOGGER_LEVEL"); level != "" {
		v.Set("logger.level", level)
	}
	if pw := os.Getenv("KIOSK_DEFAULT_PASSPHRASE"); pw != "" {
		v.Set("kiosk.defaultPassphrase", pw)
	}
}
