// Package config provides configuration loading and structs for the
// erabu server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application. A subset of fields
// can be overridden from the environment; environment values win over the
// config file.
type Config struct {
	Debug   bool          `yaml:"debug" env:"ERABU_DEBUG"`
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Cache   CacheConfig   `yaml:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string   `yaml:"host" env:"ERABU_HOST"`
	Port        int      `yaml:"port" env:"ERABU_PORT"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// YouTubeConfig holds Data API client and extraction settings.
type YouTubeConfig struct {
	BaseURL           string  `yaml:"base_url"`
	APIKey            string  `yaml:"api_key" env:"ERABU_API_KEY"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	PageSize          int     `yaml:"page_size"`
	MaxPages          int     `yaml:"max_pages"`
	CommentSampleSize int     `yaml:"comment_sample_size"`
	ChannelBatchSize  int     `yaml:"channel_batch_size"`
	ChannelPageSize   int     `yaml:"channel_page_size"`
}

// CacheConfig holds the optional upstream response cache settings. The
// cache stores raw API responses only; rankings are always recomputed.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled" env:"ERABU_CACHE_ENABLED"`
	Path       string `yaml:"path" env:"ERABU_CACHE_PATH"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// Load reads the config file at path, overlays environment variables, and
// applies defaults. An empty path skips the file and builds the config
// from environment and defaults alone. A .env file in the working
// directory is honored when present.
func Load(path string) (*Config, error) {
	var cfg Config

	configDir := "."
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		configDir = filepath.Dir(path)
	}

	_ = godotenv.Load()
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	ApplyDefaults(&cfg)

	cfg.Cache.Path = expandPath(cfg.Cache.Path, configDir)

	return &cfg, nil
}

// Validate checks settings that cannot default. Only commands that reach
// the upstream API need a valid key.
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("youtube api key is required (set youtube.api_key or ERABU_API_KEY)")
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
