package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Challenge ChallengeConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ChallengeConfig struct {
	SweepInterval time.Duration
}

// Load monta a configuração a partir das variáveis de ambiente.
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path:            getEnv("DATABASE_PATH", "piggyvault.db"),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", time.Hour),
		},
		Challenge: ChallengeConfig{
			SweepInterval: getEnvDuration("CHALLENGE_SWEEP_INTERVAL", time.Minute),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
