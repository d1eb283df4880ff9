package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAppEnv          = "dev"
	defaultHTTPAddr        = ":8080"
	defaultCacheTTL        = "600s"
	defaultReservationsTTL = "30s"
	defaultStoreTimeout    = "5s"
	defaultKafkaTopic      = "homestay.notifications"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string

	RedisAddr string
	// CacheTTL bounds how stale a repopulated read view may get; the owner
	// reservations list uses the shorter ReservationsTTL because it is
	// written far more often.
	CacheTTL        time.Duration
	ReservationsTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	// StoreTimeout caps how long a mutation may block on the durable store
	// before it is surfaced as a retryable failure.
	StoreTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", defaultAppEnv),
		HTTPAddr:     getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", defaultKafkaTopic),
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is empty")
	}

	var err error
	if cfg.CacheTTL, err = parseDuration("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.ReservationsTTL, err = parseDuration("RESERVATIONS_CACHE_TTL", defaultReservationsTTL); err != nil {
		return nil, err
	}
	if cfg.StoreTimeout, err = parseDuration("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
