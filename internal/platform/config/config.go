// Package config builds service configuration from environment variables
// so main stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server needs at startup. Optional
// backends (Postgres, Redis, Kafka) are enabled by presence of their URL;
// absent values fall back to in-memory implementations for development.
type Config struct {
	Addr          string
	PostgresURL   string
	RedisURL      string
	KafkaBrokers  []string
	KafkaTopic    string
	JWTSigningKey string
	// SessionTTL bounds how long an unfinished audit session is retained
	// in the Redis session store. Zero means no expiry.
	SessionTTL time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	addr := os.Getenv("CONFORMA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("CONFORMA_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	sessionTTL := 30 * 24 * time.Hour
	if raw := os.Getenv("CONFORMA_SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			sessionTTL = d
		}
	}

	var brokers []string
	if raw := os.Getenv("CONFORMA_KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	topic := os.Getenv("CONFORMA_KAFKA_TOPIC")

	return Config{
		Addr:          addr,
		PostgresURL:   os.Getenv("CONFORMA_POSTGRES_URL"),
		RedisURL:      os.Getenv("CONFORMA_REDIS_URL"),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
		JWTSigningKey: jwtSigningKey,
		SessionTTL:    sessionTTL,
	}
}
