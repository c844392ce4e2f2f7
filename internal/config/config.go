package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application. Values come from an
// optional YAML file, with environment variables taking precedence.
type Config struct {
	Port         string `yaml:"port"`
	FeedURL      string `yaml:"feed_url"`
	FeedLimit    int    `yaml:"feed_limit"`
	FallbackPath string `yaml:"fallback_path"`
	RefreshCron  string `yaml:"refresh_cron"`
}

func defaults() Config {
	return Config{
		Port:         "8080",
		FeedURL:      "https://secure.toronto.ca/cc_sr_v1/data/edc_eventcal_APR",
		FeedLimit:    500,
		FallbackPath: "data/fallback_events.json",
		RefreshCron:  "0 */6 * * *",
	}
}

// Load reads configuration. The file named by CONFIG_FILE (if set) is
// parsed first; individual environment variables override it.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.FeedURL = getEnv("FEED_URL", cfg.FeedURL)
	cfg.FeedLimit = getEnvInt("FEED_LIMIT", cfg.FeedLimit)
	cfg.FallbackPath = getEnv("FALLBACK_PATH", cfg.FallbackPath)
	cfg.RefreshCron = getEnv("REFRESH_CRON", cfg.RefreshCron)

	if cfg.FeedURL == "" {
		return nil, fmt.Errorf("feed_url is required")
	}
	if cfg.FeedLimit <= 0 {
		return nil, fmt.Errorf("feed_limit must be positive")
	}

	return &cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
