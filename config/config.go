package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the ticketing core. The core
// only ever receives this struct; it never reads the environment itself.
type Config struct {
	Tickets TicketConfig
	Auth    AuthConfig
	Logger  LoggerConfig
}

// TicketConfig controls ticket policy, rate limiting and SLA reporting.
type TicketConfig struct {
	MaxOpenTickets     int
	SLAThresholdHours  float64
	RateLimitPerMinute int
	SeverityWeights    map[string]int
	AllowedRoles       []string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret       string
	TokenTTLMinutes int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Tickets: TicketConfig{
			MaxOpenTickets:     5,
			SLAThresholdHours:  48,
			RateLimitPerMinute: 30,
			SeverityWeights: map[string]int{
				"low":      1,
				"medium":   2,
				"high":     3,
				"critical": 5,
			},
			AllowedRoles: []string{"agent", "admin", "viewer", "guest"},
		},
		Auth: AuthConfig{
			JWTSecret:       "dev-secret",
			TokenTTLMinutes: 60,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// Load returns the default configuration overlaid with environment
// variables, applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Tickets.MaxOpenTickets = getEnvAsInt("TICKETS_MAX_OPEN", cfg.Tickets.MaxOpenTickets)
	cfg.Tickets.SLAThresholdHours = getEnvAsFloat("TICKETS_SLA_THRESHOLD_HOURS", cfg.Tickets.SLAThresholdHours)
	cfg.Tickets.RateLimitPerMinute = getEnvAsInt("TICKETS_RATE_LIMIT_PER_MINUTE", cfg.Tickets.RateLimitPerMinute)
	cfg.Auth.JWTSecret = getEnv("AUTH_JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTLMinutes = getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", cfg.Auth.TokenTTLMinutes)
	cfg.Logger.Level = getEnv("LOG_LEVEL", cfg.Logger.Level)

	return &cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
