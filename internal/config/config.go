package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/weatherrecap/weatherrecap/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string
	DBMaxConns int

	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string
	LLMTimeout     time.Duration
	LLMMinInterval time.Duration

	RenderDir         string
	RenderCommand     string
	RenderOutput      string
	RenderTimeout     time.Duration
	RenderConcurrency int

	WeatherDataDir string
	CORSOrigins    []string
}

// Load reads an optional .env file and then the environment, applying defaults
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", constants.DefaultPort),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DBDriver:   getEnv("DB_DRIVER", constants.DefaultDBDriver),
		DBPath:     getEnv("DB_PATH", constants.DefaultDBPath),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", constants.DefaultDBPort),
		DBUsername: getEnv("DB_USERNAME", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBDatabase: getEnv("DB_DATABASE", ""),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", constants.DefaultMaxConns),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", constants.DefaultOpenAIModel),
		LLMTimeout:     getEnvDuration("LLM_TIMEOUT", constants.DefaultLLMTimeout),
		LLMMinInterval: getEnvDuration("LLM_MIN_INTERVAL", constants.DefaultLLMMinInterval),

		RenderDir:         getEnv("RENDER_DIR", constants.DefaultRenderDir),
		RenderCommand:     getEnv("RENDER_COMMAND", constants.DefaultRenderCommand),
		RenderOutput:      getEnv("RENDER_OUTPUT", constants.DefaultRenderOutput),
		RenderTimeout:     getEnvDuration("RENDER_TIMEOUT", constants.DefaultRenderTimeout),
		RenderConcurrency: getEnvInt("RENDER_CONCURRENCY", constants.DefaultRenderConcurrency),

		WeatherDataDir: getEnv("WEATHER_DATA_DIR", constants.DefaultWeatherDataDir),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", constants.DefaultCORSOrigins)),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate database settings per driver
	switch c.DBDriver {
	case constants.DriverSQLite:
		if c.DBPath == "" {
			errors = append(errors, "DB_PATH cannot be empty")
		}
	case constants.DriverMySQL:
		if c.DBHost == "" {
			errors = append(errors, "DB_HOST cannot be empty")
		}
		if c.DBUsername == "" {
			errors = append(errors, "DB_USERNAME cannot be empty")
		}
		if c.DBDatabase == "" {
			errors = append(errors, "DB_DATABASE cannot be empty")
		}
	default:
		errors = append(errors, fmt.Sprintf("DB_DRIVER must be one of: sqlite, mysql, got: %s", c.DBDriver))
	}

	if c.DBMaxConns < 1 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be at least 1, got: %d", c.DBMaxConns))
	}

	// Validate OpenAI settings
	if c.OpenAIModel == "" {
		errors = append(errors, "OPENAI_MODEL cannot be empty")
	}
	if c.OpenAIBaseURL != "" {
		if _, err := url.ParseRequestURI(c.OpenAIBaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("OPENAI_BASE_URL is not a valid URL: %s", c.OpenAIBaseURL))
		}
	}
	if c.LLMTimeout <= 0 {
		errors = append(errors, "LLM_TIMEOUT must be positive")
	}
	if c.LLMMinInterval < 0 {
		errors = append(errors, "LLM_MIN_INTERVAL cannot be negative")
	}

	// Validate render settings
	if strings.TrimSpace(c.RenderCommand) == "" {
		errors = append(errors, "RENDER_COMMAND cannot be empty")
	}
	if c.RenderDir == "" {
		errors = append(errors, "RENDER_DIR cannot be empty")
	}
	if c.RenderOutput == "" {
		errors = append(errors, "RENDER_OUTPUT cannot be empty")
	}
	if c.RenderTimeout <= 0 {
		errors = append(errors, "RENDER_TIMEOUT must be positive")
	}
	if c.RenderConcurrency < 1 {
		errors = append(errors, fmt.Sprintf("RENDER_CONCURRENCY must be at least 1, got: %d", c.RenderConcurrency))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// LoadEnvFile loads variables from path without overriding ones already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// DSN returns the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == constants.DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBDatabase)
	}
	return c.DBPath
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		// Validate reports the bad value through the sentinel.
		return -1
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
