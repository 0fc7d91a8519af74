package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type ImportConfig struct {
	// Max accepted CSV payload, in bytes.
	MaxCSVSize int64
}

type OCRConfig struct {
	// Max accepted image payload, in bytes.
	MaxImageSize int64
}

type Config struct {
	Server ServerConfig
	Import ImportConfig
	OCR    OCRConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Import: ImportConfig{
			MaxCSVSize: 5 << 20,
		},
		OCR: OCRConfig{
			MaxImageSize: 10 << 20,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
