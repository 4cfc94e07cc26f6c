package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upstream API Config
	UpstreamBaseURL string        `env:"UPSTREAM_BASE_URL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// Poller Config
	ResponderPollInterval time.Duration `env:"RESPONDER_POLL_INTERVAL" envDefault:"30s"`
	CitizenPollInterval   time.Duration `env:"CITIZEN_POLL_INTERVAL" envDefault:"10s"`

	// Service Area Config (контекст опроса гражданской страницы)
	ServiceAreaLat     float64 `env:"SERVICE_AREA_LAT"`
	ServiceAreaLon     float64 `env:"SERVICE_AREA_LON"`
	ServiceAreaRadiusM int     `env:"SERVICE_AREA_RADIUS_M" envDefault:"5000"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// API Keys for responder authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		UpstreamBaseURL:       strings.TrimRight(os.Getenv("UPSTREAM_BASE_URL"), "/"),
		UpstreamTimeout:       getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		ResponderPollInterval: getEnvAsDuration("RESPONDER_POLL_INTERVAL", 30*time.Second),
		CitizenPollInterval:   getEnvAsDuration("CITIZEN_POLL_INTERVAL", 10*time.Second),
		ServiceAreaLat:        getEnvAsFloat("SERVICE_AREA_LAT", 0),
		ServiceAreaLon:        getEnvAsFloat("SERVICE_AREA_LON", 0),
		ServiceAreaRadiusM:    getEnvAsInt("SERVICE_AREA_RADIUS_M", 5000),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
