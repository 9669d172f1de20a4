package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini API key for the recommendation assistant. Empty means the
	// assistant answers with a fixed advisory message instead of calling out.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Simulated processing delay (milliseconds) applied before sign-in,
	// registration and booking confirmation resolve. Tests set this to zero.
	AuthDelayMS    int `mapstructure:"AUTH_DELAY_MS"`
	BookingDelayMS int `mapstructure:"BOOKING_DELAY_MS"`
}

var AppConfig Config

func LoadConfig() {
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
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("AUTH_DELAY_MS", 1200)
	viper.SetDefault("BOOKING_DELAY_MS", 1500)

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
