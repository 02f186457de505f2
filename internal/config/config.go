package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

var ErrNonPositiveDuration = errors.New("duration must be positive")

type Config struct {
	Port            string
	AllowedOrigins  []string
	FrontendURL     string
	StaticDir       string
	Environment     string
	JWTSecret       string
	SeatTokenTTL    time.Duration
	SessionIdleTTL  time.Duration
	CleanupInterval time.Duration
	MaxSessions     int
	Game            GameConfig
	LogLevel        string
	LogFormat       string
}

// GameConfig holds the settings every new game controller is built from.
type GameConfig struct {
	PlayerOneName    string
	PlayerTwoName    string
	NextRoundStarter domain.StartPolicy
}

func (g GameConfig) Options() []domain.Option {
	return []domain.Option{
		domain.WithPlayerNames(g.PlayerOneName, g.PlayerTwoName),
		domain.WithNextRoundStarter(g.NextRoundStarter),
	}
}

// LoadConfig reads the environment, then applies CONFIG_FILE on top if set.
func LoadConfig() (*Config, error) {
	var allowedOrigins []string
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	starter, err := domain.ParseStartPolicy(GetEnv("NEXT_ROUND_STARTER", "winner"))
	if err != nil {
		return nil, fmt.Errorf("NEXT_ROUND_STARTER: %w", err)
	}

	cfg := &Config{
		Port:            GetEnv("PORT", "8080"),
		AllowedOrigins:  allowedOrigins,
		FrontendURL:     GetEnv("FRONTEND_URL", ""),
		StaticDir:       GetEnv("STATIC_DIR", "./static"),
		Environment:     GetEnv("ENVIRONMENT", "development"),
		JWTSecret:       GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		SeatTokenTTL:    time.Duration(GetEnvAsInt("SEAT_TOKEN_TTL_HOURS", 24)) * time.Hour,
		SessionIdleTTL:  time.Duration(GetEnvAsInt("SESSION_IDLE_TTL_MINUTES", 120)) * time.Minute,
		CleanupInterval: time.Duration(GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 5)) * time.Minute,
		MaxSessions:     GetEnvAsInt("MAX_SESSIONS", 1000),
		Game: GameConfig{
			PlayerOneName:    GetEnv("PLAYER_ONE_NAME", domain.DefaultPlayerOneName),
			PlayerTwoName:    GetEnv("PLAYER_TWO_NAME", domain.DefaultPlayerTwoName),
			NextRoundStarter: starter,
		},
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "text"),
	}

	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	// Frontend & CORS, once the final port is known
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:" + cfg.Port
	}
	cfg.AllowedOrigins = append([]string{
		cfg.FrontendURL,
		"http://localhost:5173", // Local development
	}, cfg.AllowedOrigins...)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects values that would only fail later, at startup.
func (c *Config) validate() error {
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval %s: %w", c.CleanupInterval, ErrNonPositiveDuration)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn("Invalid integer value, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}
