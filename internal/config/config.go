package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	FrontendURL     string
	StaticDir       string
	DefaultDepth    int
	LogLevel        string
	LogPretty       bool
	ShutdownTimeout time.Duration
	WSReadTimeout   time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:3200")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + Localhost + CSV values)
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:            port,
		AllowedOrigins:  allowedOrigins,
		FrontendURL:     frontendURL,
		StaticDir:       GetEnv("STATIC_DIR", "./www"),
		DefaultDepth:    GetEnvAsInt("DEFAULT_DEPTH", 2),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		LogPretty:       GetEnvAsBool("LOG_PRETTY", false),
		ShutdownTimeout: time.Duration(GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		WSReadTimeout:   time.Duration(GetEnvAsInt("WS_READ_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	return AppConfig
}

// IsOriginAllowed reports whether origin is on the allow list.
func (c *Config) IsOriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
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
		log.Warn().Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
