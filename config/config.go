package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Matching policy. When true the external vendor search always runs to
	// supplement local results; when false it runs only when no verified
	// provider is found.
	MatchAlwaysSupplement   bool    `mapstructure:"MATCH_ALWAYS_SUPPLEMENT"`
	MatchDefaultRadiusMiles float64 `mapstructure:"MATCH_DEFAULT_RADIUS_MILES"`

	// External vendor search backend.
	ValyuAPIKey            string `mapstructure:"VALYU_API_KEY"`
	ValyuBaseURL           string `mapstructure:"VALYU_BASE_URL"`
	SearchMaxResults       int    `mapstructure:"SEARCH_MAX_RESULTS"`
	SearchTimeoutSeconds   int    `mapstructure:"SEARCH_TIMEOUT_SECONDS"`
	GeocodeTimeoutSeconds  int    `mapstructure:"GEOCODE_TIMEOUT_SECONDS"`
	SearchFallbackLocality string `mapstructure:"SEARCH_FALLBACK_LOCALITY"`

	// Query term generation.
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	TermsTimeoutSeconds int    `mapstructure:"TERMS_TIMEOUT_SECONDS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("MATCH_ALWAYS_SUPPLEMENT", false)
	viper.SetDefault("MATCH_DEFAULT_RADIUS_MILES", 25)
	viper.SetDefault("VALYU_API_KEY", "")
	viper.SetDefault("VALYU_BASE_URL", "https://api.valyu.network/v1")
	viper.SetDefault("SEARCH_MAX_RESULTS", 20)
	viper.SetDefault("SEARCH_TIMEOUT_SECONDS", 20)
	viper.SetDefault("GEOCODE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("SEARCH_FALLBACK_LOCALITY", "your area")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("TERMS_TIMEOUT_SECONDS", 8)

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

// SearchTimeout returns the configured external search timeout.
func SearchTimeout() time.Duration {
	return time.Duration(AppConfig.SearchTimeoutSeconds) * time.Second
}

// GeocodeTimeout returns the configured locality-resolution timeout.
func GeocodeTimeout() time.Duration {
	return time.Duration(AppConfig.GeocodeTimeoutSeconds) * time.Second
}

// TermsTimeout returns the configured term-generation timeout.
func TermsTimeout() time.Duration {
	return time.Duration(AppConfig.TermsTimeoutSeconds) * time.Second
}
