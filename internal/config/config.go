// Package config loads pipeline settings from a local env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings for the generation client. The image transforms
// take all their parameters on the command line and need no configuration.
type Config struct {
	APIKey         string        `mapstructure:"gemini_api_key"`
	Model          string        `mapstructure:"gemini_model"`
	Endpoint       string        `mapstructure:"gemini_endpoint"`
	RequestTimeout time.Duration `mapstructure:"-"`
}

// DefaultEnvFile is the env file checked next to the working directory.
const DefaultEnvFile = ".env"

// Load reads configuration from envFile (dotenv format) and the process
// environment, the environment taking precedence. A missing env file is not
// an error; a missing API key is only reported by RequireAPIKey, so commands
// that never call the API work without any configuration.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-3-pro-image-preview")
	v.SetDefault("gemini_endpoint", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini_timeout_seconds", 120)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading env file: %w", err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.RequestTimeout = time.Duration(v.GetInt("gemini_timeout_seconds")) * time.Second

	return &cfg, nil
}

// RequireAPIKey validates that an API key was configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return errors.New("GEMINI_API_KEY not found in env file or environment")
	}
	return nil
}
