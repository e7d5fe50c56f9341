package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Mongo configuration.
	MongoURI            string `mapstructure:"MONGO_URI"`
	DBName              string `mapstructure:"DB_NAME"`
	RemindersCollection string `mapstructure:"REMINDERS_COLLECTION"`

	// AI provider configuration. AI_MODEL left empty means the
	// provider's default model.
	AIProvider      string `mapstructure:"AI_PROVIDER"`
	AIModel         string `mapstructure:"AI_MODEL"`
	TogetherAPIKey  string `mapstructure:"TOGETHER_API_KEY"`
	TogetherBaseURL string `mapstructure:"TOGETHER_BASE_URL"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	DeepseekAPIKey  string `mapstructure:"DEEPSEEK_API_KEY"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Pull in a local .env first so viper's AutomaticEnv sees it.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "remindly")
	viper.SetDefault("REMINDERS_COLLECTION", "reminders")
	viper.SetDefault("AI_PROVIDER", "together")
	viper.SetDefault("AI_MODEL", "")
	viper.SetDefault("TOGETHER_API_KEY", "")
	viper.SetDefault("TOGETHER_BASE_URL", "https://api.together.xyz/v1")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DEEPSEEK_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
