package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config reads a variable from .env or the process environment.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using system environment")
		}
		loaded = true
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
