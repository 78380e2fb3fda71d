package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	LLM    LLMConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	EnableCORS   bool
}

// StoreConfig holds event store configuration
type StoreConfig struct {
	DBPath string
}

// LLMConfig holds model invocation configuration. PrimaryModel is tried
// first; FallbackModel gets exactly one retry with a smaller output limit.
type LLMConfig struct {
	APIKey            string
	BaseURL           string
	PrimaryModel      string
	FallbackModel     string
	Temperature       float32
	PrimaryMaxTokens  int
	FallbackMaxTokens int
	Timeout           time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
			EnableCORS:   getEnvAsBool("HTTP_ENABLE_CORS", true),
		},
		Store: StoreConfig{
			DBPath: getEnv("DB_PATH", "./syllabus.db"),
		},
		LLM: LLMConfig{
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			BaseURL:           getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			PrimaryModel:      getEnv("OPENAI_MODEL", "gpt-4o"),
			FallbackModel:     getEnv("OPENAI_FALLBACK_MODEL", "gpt-4o-mini"),
			Temperature:       getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			PrimaryMaxTokens:  getEnvAsInt("OPENAI_MAX_TOKENS", 4096),
			FallbackMaxTokens: getEnvAsInt("OPENAI_FALLBACK_MAX_TOKENS", 2048),
			Timeout:           getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate reports configuration problems before any work is attempted.
// A missing API credential is reported distinctly so it never surfaces as
// a model transport error.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError(CodeNotConfigured, "OPENAI_API_KEY is required", ErrNotConfigured)
	}
	if c.Server.Addr == "" {
		return NewAppError(CodeNotConfigured, "HTTP_ADDR is required", ErrNotConfigured)
	}
	return nil
}
