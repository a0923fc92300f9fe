package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

type StorageConfig struct {
	// Dir is the data directory holding one JSON document per collection.
	// Empty means "<user home>/.fitstudio".
	Dir string `mapstructure:"dir"`
	// Ephemeral switches to the in-memory store; nothing survives the
	// process. Useful for demos and tests.
	Ephemeral bool `mapstructure:"ephemeral"`
}

type AuthConfig struct {
	// HashIterations is the PBKDF2 cost applied to new credentials.
	HashIterations int `mapstructure:"hash_iterations"`
}

type SeedConfig struct {
	// Enabled controls whether first-run seeding happens at all.
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides: storage.dir -> STUDIO_STORAGE_DIR etc.
	viper.SetEnvPrefix("studio")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("storage.dir", "")
	viper.SetDefault("storage.ephemeral", false)
	viper.SetDefault("auth.hash_iterations", 10000)
	viper.SetDefault("seed.enabled", true)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file is optional; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	if config.Storage.Dir == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return config, homeErr
		}
		config.Storage.Dir = filepath.Join(home, ".fitstudio")
	}
	return config, nil
}
