package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Event store drivers.
const (
	EventStoreSQLite    = "sqlite"
	EventStoreGCalendar = "gcalendar"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant
	Gemini     GeminiConfig
	EventStore EventStoreConfig
	RateLimit  RateLimitConfig
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

// GeminiConfig configures the generation service. An empty APIKey leaves the
// assistant unconfigured; chat requests then fail without a network call.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type EventStoreConfig struct {
	Driver          string // sqlite | gcalendar
	SQLitePath      string
	CalendarID      string
	CredentialsPath string
	TokenPath       string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

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

	// Gemini
	cfg.Gemini.APIKey = strings.TrimSpace(viper.GetString("gemini.api_key"))
	if geminiKey := strings.TrimSpace(viper.GetString("gemini_api_key")); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	// Event store
	cfg.EventStore.Driver = strings.ToLower(viper.GetString("event_store.driver"))
	cfg.EventStore.SQLitePath = viper.GetString("event_store.sqlite_path")
	cfg.EventStore.CalendarID = viper.GetString("event_store.calendar_id")
	cfg.EventStore.CredentialsPath = viper.GetString("event_store.credentials_path")
	cfg.EventStore.TokenPath = viper.GetString("event_store.token_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.EventStore.CredentialsPath = googleCreds
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EventStore.Driver {
	case EventStoreSQLite:
		if c.EventStore.SQLitePath == "" {
			return fmt.Errorf("event_store.sqlite_path is required for driver %q", EventStoreSQLite)
		}
	case EventStoreGCalendar:
		if c.EventStore.CredentialsPath == "" {
			return fmt.Errorf("event_store.credentials_path is required for driver %q", EventStoreGCalendar)
		}
	default:
		return fmt.Errorf("unknown event_store.driver %q", c.EventStore.Driver)
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
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

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	viper.SetDefault("event_store.driver", EventStoreSQLite)
	viper.SetDefault("event_store.sqlite_path", "data/events.db")
	viper.SetDefault("event_store.calendar_id", "primary")
	viper.SetDefault("event_store.token_path", "token.json")

	viper.SetDefault("rate_limit.requests_per_min", 30)
}
