// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr       string
	DBPath     string
	StaticDir  string
	PublicURL  string
	AdminToken string

	LogLevel   string
	LogFormat  string // text | json
	DBLogLevel string // silent | error | warn | info

	Seed bool
}

// Load reads environment variables into Config. Call godotenv.Load first if a
// .env file should be honoured.
func Load() Config {
	return Config{
		Addr:       getEnv("ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", "activities.db"),
		StaticDir:  getEnv("STATIC_DIR", "static"),
		PublicURL:  strings.TrimRight(getEnv("PUBLIC_URL", ""), "/"),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  oneOf(strings.ToLower(getEnv("LOG_FORMAT", "text")), "text", "text", "json"),
		DBLogLevel: oneOf(strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")), "warn", "silent", "error", "warn", "info"),
		Seed:       getBoolEnv("SEED", true),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

func oneOf(v, def string, allowed ...string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}
