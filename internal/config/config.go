package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	JWTSecret        string
	AllowOrigins     []string
}

var App *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	App = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "aiquizzer"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:        getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "llama-3.3-70b-versatile"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "change-me"),
		AllowOrigins:     []string{getEnvOrDefault("ALLOW_ORIGIN", "http://localhost:3000")},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
