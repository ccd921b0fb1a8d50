package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultMirrorDSN    = "brightfuture.db"
	defaultMongoURI     = "mongodb://localhost:27017"
	defaultMongoDB      = "brightfuture"
	defaultMongoTimeout = "5s"
	defaultJWTTTL       = "24h"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultDataDir      = "data"
)

type Config struct {
	AppEnv    string
	Port      string
	MirrorDSN string
	DataDir   string

	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	RelayEndpoint   string
	CRMEndpoint     string
	WebhookEndpoint string

	JWTSecret string
	JWTTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.MirrorDSN = getEnv("MIRROR_DSN", defaultMirrorDSN)
	cfg.DataDir = getEnv("DATA_DIR", defaultDataDir)

	cfg.MongoURI = getEnv("MONGO_URI", defaultMongoURI)
	cfg.MongoDB = getEnv("MONGO_DB", defaultMongoDB)

	cfg.RelayEndpoint = strings.TrimSpace(os.Getenv("RELAY_ENDPOINT"))
	cfg.CRMEndpoint = strings.TrimSpace(os.Getenv("CRM_ENDPOINT"))
	cfg.WebhookEndpoint = strings.TrimSpace(os.Getenv("WEBHOOK_ENDPOINT"))

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.MongoTimeout, err = parseDurationEnv("MONGO_TIMEOUT", defaultMongoTimeout)
	if err != nil {
		return nil, err
	}

	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.RelayEndpoint == "" {
		log.Printf("config: RELAY_ENDPOINT is empty, lead submissions will be rejected")
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.MongoTimeout <= 0 {
		return fmt.Errorf("MONGO_TIMEOUT must be > 0")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.RelayEndpoint == "" {
			return fmt.Errorf("in prod/release RELAY_ENDPOINT must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
