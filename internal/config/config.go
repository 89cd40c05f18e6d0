package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/taskreports/task-api/internal/infrastructure/client"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	HTTPPort    string
	StoreDriver string

	Postgres client.PostgresConfig

	MongoURL string
	MongoDB  string

	// Пустой RabbitMQURL = события отключены
	RabbitMQURL string
}

// Load читает .env (если есть) и переменные окружения
func Load() *Config {
	// .env опционален, в проде конфиг приходит из окружения
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "3000"),
		StoreDriver: getEnv("STORE_DRIVER", StorePostgres),
		Postgres: client.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "task_management"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "task_management"),
	}

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		cfg.RabbitMQURL = fmt.Sprintf("amqp://%s:%s@%s:%s/",
			getEnv("RABBITMQ_USER", "guest"),
			getEnv("RABBITMQ_PASSWORD", "guest"),
			host,
			getEnv("RABBITMQ_PORT", "5672"))
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
