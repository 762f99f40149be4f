package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	PostgresURL   string
	// ProspectsFile seeds the in-memory store when no database is configured.
	ProspectsFile string
	Redis         RedisConfig
	KafkaBrokers  []string
	AuditTopic    string
	NameCacheTTL  time.Duration
	HTTP          HTTPConfig
}

// HTTPConfig holds server-side timeouts. WriteTimeout must stay above the
// middleware request timeout or in-flight responses get cut off.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// RedisConfig holds connection tuning for the optional redis cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("INSTRUCTHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	cacheTTL := 5 * time.Minute
	if v := os.Getenv("NAME_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cacheTTL = d
		}
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "instructhub.audit"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		ProspectsFile: os.Getenv("INSTRUCTHUB_PROSPECTS_FILE"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers: brokers,
		AuditTopic:   topic,
		NameCacheTTL: cacheTTL,
		HTTP: HTTPConfig{
			ReadHeaderTimeout: duration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			WriteTimeout:      duration("HTTP_WRITE_TIMEOUT", 35*time.Second),
			IdleTimeout:       duration("HTTP_IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

func duration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
