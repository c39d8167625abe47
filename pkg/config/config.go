package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Addr string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
	// FilePath — путь снимка сессии для файлового хранилища
	// (dev-режим без Redis). Пустое значение означает каталог по умолчанию.
	FilePath string
}

type RequestsConfig struct {
	// StrictStatus включает монотонную таблицу переходов статусов.
	// По умолчанию переходы разрешены любые, как в исходной системе.
	StrictStatus bool
}

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Redis    RedisConfig
	Session  SessionConfig
	Requests RequestsConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Addr: ":" + getEnv("PORTAL_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:3000"),
			Timeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Session: SessionConfig{
			TTL:        getDuration("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE", "portal_session"),
			FilePath:   getEnv("SESSION_FILE", ""),
		},
		Requests: RequestsConfig{
			StrictStatus: getEnv("PORTAL_STRICT_STATUS", "") == "1",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
