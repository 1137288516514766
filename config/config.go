package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DB DBConfig

	CORSOrigins    []string
	StaticDir      string
	RequestTimeout time.Duration
	GinMode        string

	// HTTPErrorStatus switches error responses from the legacy always-200
	// convention to 4xx/5xx codes. The body shape is the same either way.
	HTTPErrorStatus bool
	// StrictStatusValues rejects room and booking statuses outside the known sets.
	StrictStatusValues bool

	AutoMigrate bool
	SeedRooms   bool
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// Load reads .env (optional) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	dbURL := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if dbURL == "" {
		dbURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	return Config{
		Port: envOrDefault("PORT", "8080"),
		DB: DBConfig{
			URL:             dbURL,
			Host:            envOrDefault("DB_HOST", "127.0.0.1"),
			Port:            envOrDefault("DB_PORT", "3306"),
			User:            envOrDefault("DB_USER", "root"),
			Password:        envOrDefault("DB_PASSWORD", os.Getenv("DB_PASS")),
			Name:            envOrDefault("DB_NAME", "hotel_db"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			LogLevel:        envOrDefault("DB_LOG_LEVEL", "warn"),
		},
		CORSOrigins:        parseList(os.Getenv("CORS_ORIGINS"), []string{"*"}),
		StaticDir:          strings.TrimSpace(os.Getenv("STATIC_DIR")),
		RequestTimeout:     envDuration("REQUEST_TIMEOUT", 15*time.Second),
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		HTTPErrorStatus:    envBool("HTTP_ERROR_STATUS", false),
		StrictStatusValues: envBool("STRICT_STATUS_VALUES", false),
		AutoMigrate:        envBool("AUTO_MIGRATE", true),
		SeedRooms:          envBool("SEED_ROOMS", false),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️  invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return b
}

// envDuration accepts Go durations ("30s") or a bare number of seconds.
func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("⚠️  invalid %s=%q, using %s", key, raw, def)
	return def
}

func parseList(raw string, def []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
