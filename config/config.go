package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddr  string
	Environment string
	LogLevel    string
	BaseURL     string

	DatabaseDSN string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	AccessSecret string

	DirectoryBaseURL string
	DirectoryToken   string

	// SchedulerTick is a deployment parameter, not a correctness constant.
	SchedulerTick time.Duration
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			logrus.Warnf("env file not found or could not be loaded: %v", err)
		}
	}

	return Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		Environment: getEnv("ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BaseURL:     getEnv("BASE_URL", "*"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		AccessSecret: os.Getenv("ACCESS_SECRET"),

		DirectoryBaseURL: os.Getenv("DIRECTORY_BASE_URL"),
		DirectoryToken:   os.Getenv("DIRECTORY_TOKEN"),

		SchedulerTick: getDuration("SCHEDULER_TICK", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
