package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Database (PostgreSQL)
	DBHost        string        `envconfig:"DB_HOST" required:"true"`
	DBPort        string        `envconfig:"DB_PORT" required:"true"`
	DBUser        string        `envconfig:"DB_USER" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_IDLE_TIMEOUT" default:"5m"`
	// Secret, loaded separately without an envconfig tag
	DBPassword string

	// Redis (token store, prompt handoff, rate limiter)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string

	// JWT settings - secrets without envconfig tags
	JWTSecret       string
	PasswordPepper  string
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"168h"` // 7 days

	// AI completion backend (OpenAI-compatible; Groq by default)
	AIAPIKey    string
	AIBaseURL   string        `envconfig:"AI_BASE_URL" default:"https://api.groq.com/openai/v1"`
	AIModel     string        `envconfig:"AI_MODEL" default:"llama-3.3-70b-versatile"`
	AITimeout   time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
	AIMaxTokens int           `envconfig:"AI_MAX_TOKENS" default:"150"`

	// How long a generated prompt waits in the handoff store before expiring.
	PromptHandoffTTL time.Duration `envconfig:"PROMPT_HANDOFF_TTL" default:"24h"`

	// CORS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// LoadConfig loads configuration from environment variables and secrets.
func LoadConfig(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		} else {
			log.Printf("Loaded configuration from %s", envFilePath)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	// Secrets are read directly so that empty values are caught explicitly.
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.PasswordPepper = os.Getenv("PASSWORD_PEPPER")
	cfg.AIAPIKey = os.Getenv("AI_API_KEY")

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.PasswordPepper == "" {
		return nil, fmt.Errorf("PASSWORD_PEPPER is not set")
	}
	if cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is not set")
	}

	return &cfg, nil
}
