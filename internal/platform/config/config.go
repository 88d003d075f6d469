package config

import (
	"os"
	"strings"
	"time"

	id "pbmledger/pkg/domain"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	Owner         id.Identity
	JWTSigningKey string
	PostgresURL   string
	RedisURL      string
	KafkaBrokers  []string
	KafkaTopic    string
}

// ShutdownTimeout bounds graceful shutdown of the HTTP server.
var ShutdownTimeout = 10 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PBM_LEDGER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	owner := os.Getenv("PBM_LEDGER_OWNER")
	if owner == "" {
		owner = "pbm-owner"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("PBM_AUDIT_TOPIC")
	if topic == "" {
		topic = "pbm.audit.events"
	}

	var brokers []string
	if raw := os.Getenv("PBM_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Server{
		Addr:          addr,
		Owner:         id.Identity(owner),
		JWTSigningKey: jwtSigningKey,
		PostgresURL:   os.Getenv("PBM_POSTGRES_URL"),
		RedisURL:      os.Getenv("PBM_REDIS_URL"),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
	}
}
