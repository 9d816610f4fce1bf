package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the environment-backed settings for the server.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	TemplatesDir  string
	StaticDir     string
}

// Load reads .env when present and assembles the config with
// dev-friendly fallbacks.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=inkwell port=5432 sslmode=disable"),
		SessionSecret: getenv("SESSION_SECRET", "secret_key_change_me"),
		TemplatesDir:  getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:     getenv("STATIC_DIR", "./web/static"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
