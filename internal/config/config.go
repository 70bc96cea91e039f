package config

import "github.com/sirupsen/logrus"

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type LockMode string

const (
	// LockLocal serializes per-business operations with an in-process keyed
	// mutex; correct only for single-instance deployments.
	LockLocal LockMode = "local"
	// LockRedis uses a redis SET NX lock so multiple instances can share
	// one backing store.
	LockRedis LockMode = "redis"
)

type (
	Config struct {
		AppEnv      AppEnv
		LogLevel    logrus.Level
		HTTP        HTTP
		Database    Database
		Kafka       Kafka
		SMS         SMS
		Lock        Lock
		WorkerCount int
	}

	HTTP struct {
		Port int
	}

	Database struct {
		Postgres Postgres
		Redis    Redis
	}

	Postgres struct {
		Host     string
		Port     int
		Username string
		Password string
		Database string
	}

	Redis struct {
		Host     string
		Port     int
		Password string
		Database int
	}

	Kafka struct {
		Host string
		Port int
	}

	Lock struct {
		Mode LockMode
	}

	SMS struct {
		// Provider selects the delivery backend: "twilio",
		// "africastalking" or "" (disabled).
		Provider       string
		Twilio         Twilio
		AfricasTalking AfricasTalking
	}

	Twilio struct {
		AccountSid string
		AuthToken  string
		FromNumber string
	}

	AfricasTalking struct {
		Username string
		APIKey   string
		SenderID string
	}
)
