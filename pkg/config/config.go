package config

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Port              string
	LogLevel          string
	InstanceID        string
	RedisURL          string
	RateLimitRequests int
	RateLimitWindowMS int64
	HoneypotField     string
	ForwardCooldownMS int64
	NotifierTimeoutMS int64
	ResendAPIKey      string
	EmailFrom         string
	EmailTo           string
	EmailReplyTo      string
	BusinessName      string
	OwnerName         string
	OwnerPhone        string
	OwnerEmail        string
}

func Load() *Config {
	config := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		InstanceID:        getEnv("INSTANCE_ID", generateInstanceID()),
		RedisURL:          getEnv("REDIS_URL", ""),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 3),
		RateLimitWindowMS: getEnvInt64("RATE_LIMIT_WINDOW", 60000),
		HoneypotField:     getEnv("HONEYPOT_FIELD", "website_url"),
		ForwardCooldownMS: getEnvInt64("FORWARD_COOLDOWN_MS", 120000),
		NotifierTimeoutMS: getEnvInt64("NOTIFIER_TIMEOUT_MS", 8000),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@harker-enterprises.com"),
		EmailTo:           getEnv("EMAIL_TO", "ronaldharker@yahoo.com"),
		EmailReplyTo:      getEnv("EMAIL_REPLY_TO", ""),
		BusinessName:      getEnv("BUSINESS_NAME", "Harker Enterprises"),
		OwnerName:         getEnv("OWNER_NAME", "Ron"),
		OwnerPhone:        getEnv("OWNER_PHONE", "(330) 301-2769"),
		OwnerEmail:        getEnv("OWNER_EMAIL", "ronaldharker@yahoo.com"),
	}

	return config
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMS) * time.Millisecond
}

func (c *Config) ForwardCooldown() time.Duration {
	return time.Duration(c.ForwardCooldownMS) * time.Millisecond
}

func (c *Config) NotifierTimeout() time.Duration {
	return time.Duration(c.NotifierTimeoutMS) * time.Millisecond
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func generateInstanceID() string {
	hostname, err := os.Hostname()
	if err != nil {
		return uuid.New().String()
	}
	return hostname + "-" + uuid.New().String()[:8]
}
