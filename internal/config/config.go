package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/news"
	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY (or API_KEY) is not set")

// Config captures runtime configuration for the dashboard service.
type Config struct {
	ListenAddr     string
	FrontendURL    string
	GeminiAPIKey   string
	Models         news.Models
	RequestTimeout time.Duration
}

// FromEnv creates a configuration instance sourced from environment variables,
// loading a .env file first when one exists.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	defaults := news.DefaultModels()
	cfg := Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		Models: news.Models{
			Fast:           getEnv("GEMINI_MODEL_FAST", defaults.Fast),
			Complex:        getEnv("GEMINI_MODEL_COMPLEX", defaults.Complex),
			Lite:           getEnv("GEMINI_MODEL_LITE", defaults.Lite),
			ThinkingBudget: defaults.ThinkingBudget,
		},
		RequestTimeout: 120 * time.Second,
	}

	if cfg.GeminiAPIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	if budget := os.Getenv("GEMINI_THINKING_BUDGET"); budget != "" {
		n, err := strconv.ParseInt(budget, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("parse GEMINI_THINKING_BUDGET: %w", err)
		}
		cfg.Models.ThinkingBudget = int32(n)
	}

	if timeout := os.Getenv("GEMINI_TIMEOUT_SECONDS"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse GEMINI_TIMEOUT_SECONDS: %w", err)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

// AllowedOrigins lists the CORS origins for the API.
func (c Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
