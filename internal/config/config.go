package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL           string
	JWTSecret             string
	TokenTTLSeconds       int64
	RequestTimeoutSeconds int
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	MetricsDiskPath       string
	MetricsSampleSeconds  int
	CorsOrigins           []string
}

// Load reads the environment. DATABASE_URL and JWT_SECRET are mandatory;
// there is deliberately no fallback secret.
func Load() Config {
	return Config{
		DatabaseURL:           mustEnv("DATABASE_URL"),
		JWTSecret:             mustEnv("JWT_SECRET"),
		TokenTTLSeconds:       int64(envOrInt("TOKEN_TTL_SECONDS", 604800)),
		RequestTimeoutSeconds: envOrInt("REQUEST_TIMEOUT_SECONDS", 10),
		DBMaxOpenConns:        envOrInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:        envOrInt("DB_MAX_IDLE_CONNS", 5),
		MetricsDiskPath:       envOr("METRICS_DISK_PATH", "/"),
		MetricsSampleSeconds:  envOrInt("METRICS_SAMPLE_INTERVAL", 5),
		CorsOrigins:           parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
