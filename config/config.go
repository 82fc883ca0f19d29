package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Catalog console specifics
	API          APIConfig
	Session      SessionConfig
	Notification NotificationConfig
	Metrics      MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig points the console at the remote catalog API.
type APIConfig struct {
	BaseURL   string
	LoginPath string
	// Timeout of 0 keeps the transport default.
	Timeout         time.Duration
	RateLimitPerSec float64
	RateBurst       int
}

// SessionConfig controls the browser session cookie and store.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	MaxEntries int
	Secure     bool
	// TokenTTL applies when the login token carries no exp claim.
	TokenTTL time.Duration
}

type NotificationConfig struct {
	Duration time.Duration
}

type MetricsConfig struct {
	Prefix string
}

// Load loads configuration using Viper, after an optional .env file.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Catalog API
	cfg.API.BaseURL = strings.TrimRight(viper.GetString("api.base_url"), "/")
	cfg.API.LoginPath = viper.GetString("api.login_path")
	cfg.API.Timeout = viper.GetDuration("api.timeout")
	cfg.API.RateLimitPerSec = viper.GetFloat64("api.rate_limit_per_sec")
	cfg.API.RateBurst = viper.GetInt("api.rate_burst")

	// Session
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.Secure = viper.GetBool("session.secure")
	cfg.Session.TokenTTL = viper.GetDuration("session.token_ttl")

	cfg.Notification.Duration = viper.GetDuration("notification.duration")
	cfg.Metrics.Prefix = viper.GetString("metrics.prefix")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(cfg.API.LoginPath, "/") {
		return fmt.Errorf("api.login_path must start with /, got %q", cfg.API.LoginPath)
	}
	if cfg.API.RateLimitPerSec < 0 || cfg.API.RateBurst < 0 {
		return fmt.Errorf("api rate limit must not be negative")
	}
	if cfg.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("api.base_url", "https://dummyjson.com")
	viper.SetDefault("api.login_path", "/auth/login")
	viper.SetDefault("api.timeout", "0s")
	viper.SetDefault("api.rate_limit_per_sec", 0)
	viper.SetDefault("api.rate_burst", 1)

	viper.SetDefault("session.cookie_name", "catalog_session")
	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("session.secure", false)
	viper.SetDefault("session.token_ttl", "1h")

	viper.SetDefault("notification.duration", "5s")
	viper.SetDefault("metrics.prefix", "catalog_console")
}
