package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	HandoffStoreMemory   = "memory"
	HandoffStoreRedis    = "redis"
	HandoffStoreDynamoDB = "dynamodb"
)

// Config holds application configuration
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string

	HandoffStore        string
	HandoffTTL          time.Duration
	SessionCookie       string
	SessionCookieSecure bool

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	HandoffTable       string

	CatalogFile string

	BusinessTimezone string
	SlotOpenHour     int
	SlotCloseHour    int
	SlotInterval     time.Duration
	SlotLeadTime     time.Duration

	EstimateBreakdownOrder string
	ScheduleBreakdownOrder string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:8000"}),

		HandoffStore:        strings.ToLower(strings.TrimSpace(getEnv("HANDOFF_STORE", HandoffStoreMemory))),
		HandoffTTL:          getEnvAsDuration("HANDOFF_TTL", 2*time.Hour),
		SessionCookie:       getEnv("SESSION_COOKIE", "sqv_session"),
		SessionCookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		HandoffTable:       getEnv("HANDOFF_TABLE", "handoff_sessions"),

		CatalogFile: getEnv("CATALOG_FILE", ""),

		BusinessTimezone: getEnv("BUSINESS_TIMEZONE", "America/New_York"),
		SlotOpenHour:     getEnvAsInt("SLOT_OPEN_HOUR", 9),
		SlotCloseHour:    getEnvAsInt("SLOT_CLOSE_HOUR", 17),
		SlotInterval:     getEnvAsDuration("SLOT_INTERVAL", time.Hour),
		SlotLeadTime:     getEnvAsDuration("SLOT_LEAD_TIME", 2*time.Hour),

		EstimateBreakdownOrder: getEnv("ESTIMATE_BREAKDOWN_ORDER", "base_first"),
		ScheduleBreakdownOrder: getEnv("SCHEDULE_BREAKDOWN_ORDER", "base_last"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
