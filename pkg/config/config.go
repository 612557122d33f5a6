package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Ingest   IngestConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CatalogTTL    time.Duration
}

// MongoConfig is optional; an empty URI disables the recommendation archive.
type MongoConfig struct {
	URI      string
	Database string
}

type IngestConfig struct {
	SourceURL         string
	RequestsPerSecond float64
	FailureThreshold  uint32
	BreakerTimeout    time.Duration
	FetchTimeout      time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	rps, err := strconv.ParseFloat(getEnv("INGEST_REQUESTS_PER_SECOND", "2"), 64)
	if err != nil || rps <= 0 {
		return nil, errors.New("invalid ingest requests per second")
	}

	threshold, err := strconv.ParseUint(getEnv("INGEST_FAILURE_THRESHOLD", "3"), 10, 32)
	if err != nil {
		return nil, errors.New("invalid ingest failure threshold")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "EDUINTEL API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "eduintel"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CatalogTTL:    getDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URL", ""),
			Database: getEnv("MONGO_DB", "eduintel"),
		},
		Ingest: IngestConfig{
			SourceURL:         getEnv("INGEST_SOURCE_URL", ""),
			RequestsPerSecond: rps,
			FailureThreshold:  uint32(threshold),
			BreakerTimeout:    getDuration("INGEST_BREAKER_TIMEOUT", 30*time.Second),
			FetchTimeout:      getDuration("INGEST_FETCH_TIMEOUT", 10*time.Second),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}

	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
