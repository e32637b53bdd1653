package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mail     MailConfig
	Platform PlatformConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// StripeConfig holds payment gateway credentials
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

// RedisConfig holds the redis address shared by the task queue and rate limiter
type RedisConfig struct {
	Addr string
}

// KafkaConfig holds audit event streaming configuration
type KafkaConfig struct {
	Brokers       string
	AuditTopic    string
	ConsumerGroup string
}

// MailConfig holds outbound email settings
type MailConfig struct {
	ResendAPIKey  string
	DefaultSender string
}

// PlatformConfig holds fundraising platform defaults
type PlatformConfig struct {
	DefaultFeePercent int // Platform fee percentage applied when neither team nor league sets one
	WebAppURI         string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	if cfg.Stripe.SecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Stripe.WebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}

	if cfg.Mail.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Mail.DefaultSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}

	if cfg.Platform.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	feePercent := getEnvWithDefault("DEFAULT_PLATFORM_FEE_PERCENT", "5")
	cfg.Platform.DefaultFeePercent, err = strconv.Atoi(feePercent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DEFAULT_PLATFORM_FEE_PERCENT: %w", err)
	}
	if cfg.Platform.DefaultFeePercent < 0 || cfg.Platform.DefaultFeePercent > 100 {
		return nil, fmt.Errorf("DEFAULT_PLATFORM_FEE_PERCENT must be between 0 and 100")
	}

	cfg.Redis.Addr = getEnvWithDefault("REDIS_ADDR", "localhost:6379")

	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.AuditTopic = getEnvWithDefault("KAFKA_AUDIT_TOPIC", "audit-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "audit-consumers")

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
