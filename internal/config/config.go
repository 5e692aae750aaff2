package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables (godotenv loads .env in main).
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SeedConfig struct {
	Enabled bool
	File    string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "bookstore-catalog"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "bookstore"),
			Collection:     getEnv("MONGO_COLLECTION", "books"),
			MaxPoolSize:    uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 20)),
			ConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxRetries:     getEnvInt("MONGO_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("MONGO_RETRY_DELAY_SECONDS", 2)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_ENABLED", true),
			File:    getEnv("SEED_FILE", "data/books.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI must not be empty")
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return fmt.Errorf("MONGO_DATABASE and MONGO_COLLECTION must not be empty")
	}
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
