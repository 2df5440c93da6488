package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	TelegramToken string

	DifyAPIKey string
	DifyAPIURL string

	RedisURL    string
	DatabaseURL string

	RosterPath string

	Location *time.Location
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DifyAPIKey:    os.Getenv("DIFY_API_KEY"),
		DifyAPIURL:    os.Getenv("DIFY_API_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RosterPath:    getEnv("ROSTER_PATH", "teams.yaml"),
		Location:      loadLocation(getEnv("TZ", "Europe/Moscow")),
	}

	// Без токена и ключа бот бесполезен, но падать на старте нельзя:
	// health-check должен отвечать, окружение может доехать позже.
	if cfg.TelegramToken == "" {
		log.Println("WARN: TELEGRAM_TOKEN is not set")
	}
	if cfg.DifyAPIKey == "" || cfg.DifyAPIURL == "" {
		log.Println("WARN: DIFY_API_KEY/DIFY_API_URL are not set")
	}

	return cfg
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("WARN: unknown time zone %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
