package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from the environment, with an optional .env file
// for local development. Missing values fall back to local defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	logLevel, err := logrus.ParseLevel(envString("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		AppEnv:   AppEnv(envString("APP_ENV", string(LocalEnv))),
		LogLevel: logLevel,
		HTTP: HTTP{
			Port: envInt("HTTP_PORT", 8080),
		},
		Database: Database{
			Postgres: Postgres{
				Host:     envString("POSTGRES_HOST", "127.0.0.1"),
				Port:     envInt("POSTGRES_PORT", 5432),
				Username: envString("POSTGRES_USER", "smartqueue"),
				Password: envString("POSTGRES_PASSWORD", ""),
				Database: envString("POSTGRES_DB", "smartqueue"),
			},
			Redis: Redis{
				Host:     envString("REDIS_HOST", "127.0.0.1"),
				Port:     envInt("REDIS_PORT", 6379),
				Password: envString("REDIS_PASSWORD", ""),
				Database: envInt("REDIS_DB", 0),
			},
		},
		Kafka: Kafka{
			Host: envString("KAFKA_HOST", "127.0.0.1"),
			Port: envInt("KAFKA_PORT", 9092),
		},
		SMS: SMS{
			Provider: envString("SMS_PROVIDER", ""),
			Twilio: Twilio{
				AccountSid: envString("TWILIO_ACCOUNT_SID", ""),
				AuthToken:  envString("TWILIO_AUTH_TOKEN", ""),
				FromNumber: envString("TWILIO_FROM_NUMBER", ""),
			},
			AfricasTalking: AfricasTalking{
				Username: envString("AT_USERNAME", "sandbox"),
				APIKey:   envString("AT_API_KEY", ""),
				SenderID: envString("AT_SENDER_ID", ""),
			},
		},
		Lock: Lock{
			Mode: LockMode(envString("LOCK_MODE", string(LockLocal))),
		},
		WorkerCount: envInt("WORKER_COUNT", 4),
	}, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
