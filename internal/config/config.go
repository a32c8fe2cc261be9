package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              string
	GinMode           string
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	TokenTTL          time.Duration
	MinPasswordLength int
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          getEnv("DB_DRIVER", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "todouser"),
		DBPassword:        getEnv("DB_PASSWORD", "todopassword"),
		DBName:            getEnv("DB_NAME", "todo_list"),
		JWTSecret:         getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:          time.Duration(getEnvInt("TOKEN_TTL_DAYS", 30)) * 24 * time.Hour,
		MinPasswordLength: getEnvInt("MIN_PASSWORD_LENGTH", 6),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
