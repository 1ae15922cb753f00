package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// GenerationConfig selects and authenticates the text generation provider.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// PlacesConfig holds the Google Places credentials and transport settings.
type PlacesConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port       string
	LogLevel   zerolog.Level
	Places     PlacesConfig
	Generation GenerationConfig
}

// Load reads configuration from the environment, after merging a local .env file if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port: getEnvWithDefault("PORT", "8000"),
		Places: PlacesConfig{
			APIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
			BaseURL: getEnvWithDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			Timeout: parseDuration(getEnvWithDefault("PLACES_TIMEOUT", "15s"), 15*time.Second),
		},
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.Places.APIKey == "" {
		return nil, errors.New("GOOGLE_MAPS_API_KEY is required")
	}

	gen, err := generationConfig()
	if err != nil {
		return nil, err
	}
	cfg.Generation = gen

	return cfg, nil
}

func generationConfig() (GenerationConfig, error) {
	provider := strings.ToLower(getEnvWithDefault("GENERATION_PROVIDER", ProviderGemini))

	switch provider {
	case ProviderGemini:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return GenerationConfig{}, errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
		return GenerationConfig{
			Provider: provider,
			APIKey:   key,
			Model:    getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		}, nil
	case ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return GenerationConfig{}, errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
		return GenerationConfig{
			Provider: provider,
			APIKey:   key,
			Model:    getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		}, nil
	default:
		return GenerationConfig{}, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
