package config

import (
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	Kafka   Kafka   `yaml:"kafka"`
	Pricing Pricing `yaml:"pricing"`
	Engine  Engine  `yaml:"engine"`
	Logger  Logger  `yaml:"logger"`
}

// Kafka represents the Kafka configuration
type Kafka struct {
	Brokers   []string `yaml:"brokers"`
	FeedTopic string   `yaml:"feed_topic"`
}

// Pricing represents the pricing constants; fixed for the lifetime of the
// process.
type Pricing struct {
	TokenDiscountPercent int64 `yaml:"token_discount_percent"`
}

// Engine represents the purchase engine configuration. Account is the
// identity the engine spends token allowances and escrowed native value as.
type Engine struct {
	Account string `yaml:"account"`
}

// Logger represents the logger configuration
type Logger struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	OutputPath string `yaml:"output_path"`
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() Config {
	return Config{
		Kafka: Kafka{
			Brokers:   []string{getEnv("KAFKA_BROKER", "localhost:9092")},
			FeedTopic: getEnv("KAFKA_FEED_TOPIC", "ticketing.feed"),
		},
		Pricing: Pricing{
			TokenDiscountPercent: getEnvInt64("TOKEN_DISCOUNT_PERCENT", 15),
		},
		Engine: Engine{
			Account: getEnv("ENGINE_ACCOUNT", "ticketing-engine"),
		},
		Logger: Logger{
			Level:      getEnv("LOG_LEVEL", "info"),
			Encoding:   getEnv("LOG_ENCODING", "json"),
			OutputPath: getEnv("LOG_OUTPUT_PATH", "stdout"),
		},
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt64 returns an integer environment variable or a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
