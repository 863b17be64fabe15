package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig identifies the remote JSON document (one bin, one credential).
type StoreConfig struct {
	BaseURL string
	BinID   string
	APIKey  string
	Timeout time.Duration
}

type AdminConfig struct {
	// Key is the shared secret expected in the X-Admin-Key header.
	Key string
	// PublicCodeCreate leaves POST /codes open to unauthenticated callers.
	PublicCodeCreate bool
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("STORE_BASE_URL", "https://api.jsonbin.io/v3")
	viper.SetDefault("STORE_TIMEOUT", 15)
	viper.SetDefault("CODES_PUBLIC_CREATE", true)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("REDIS_PORT", "6379")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			StaticDir:    viper.GetString("STATIC_DIR"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			BaseURL: viper.GetString("STORE_BASE_URL"),
			BinID:   viper.GetString("STORE_BIN_ID"),
			APIKey:  os.Getenv("STORE_API_KEY"),
			Timeout: time.Duration(viper.GetInt("STORE_TIMEOUT")) * time.Second,
		},
		Admin: AdminConfig{
			Key:              os.Getenv("ADMIN_KEY"),
			PublicCodeCreate: viper.GetBool("CODES_PUBLIC_CREATE"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	// Basic validation
	if cfg.Admin.Key == "" {
		log.Println("WARNING: ADMIN_KEY is not set; all admin endpoints will reject requests")
	}

	return cfg, nil
}
