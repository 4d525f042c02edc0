// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultMongoDatabase = "page_insights"

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"PORT" validate:"required,numeric"`
	ServerTimeout time.Duration `mapstructure:"-"`
	TLSCertFile   string        `mapstructure:"TLS_CERT_FILE" validate:"required_with=TLSKeyFile"`
	TLSKeyFile    string        `mapstructure:"TLS_KEY_FILE" validate:"required_with=TLSCertFile"`
	StaticDir     string        `mapstructure:"STATIC_DIR"`

	// Database Configuration
	MongoURI                    string        `mapstructure:"MONGO_URI" validate:"required"`
	MongoDatabase               string        `mapstructure:"MONGO_DATABASE"`
	MongoConnectTimeout         time.Duration `mapstructure:"-"`
	MongoServerSelectionTimeout time.Duration `mapstructure:"-"`
	MongoSocketTimeout          time.Duration `mapstructure:"-"`
	MongoMaxPoolSize            uint64        `mapstructure:"MONGO_MAX_POOL_SIZE" validate:"gt=0"`

	// Cron Jobs
	DBMonitorSchedule string `mapstructure:"DB_MONITOR_SCHEDULE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Facebook OAuth / Graph API Configuration
	FacebookAppID       string `mapstructure:"FB_APP_ID" validate:"required"`
	FacebookAppSecret   string `mapstructure:"FB_APP_SECRET" validate:"required"`
	FacebookRedirectURI string `mapstructure:"FB_REDIRECT_URI" validate:"required,url"`
	FacebookAuthURL     string `mapstructure:"FB_AUTH_URL" validate:"required,url"`
	FacebookTokenURL    string `mapstructure:"FB_TOKEN_URL" validate:"required,url"`
	GraphAPIBaseURL     string `mapstructure:"GRAPH_API_BASE_URL" validate:"required,url"`
	GraphAPIVersion     string `mapstructure:"GRAPH_API_VERSION" validate:"required"`
}

// TLSEnabled reports whether the server should terminate TLS itself.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("PORT", "3001")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("TLS_CERT_FILE", "")
	v.SetDefault("TLS_KEY_FILE", "")
	v.SetDefault("STATIC_DIR", "public")

	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "")
	v.SetDefault("MONGO_CONNECT_TIMEOUT_MS", 10000)
	v.SetDefault("MONGO_SERVER_SELECTION_TIMEOUT_MS", 10000)
	v.SetDefault("MONGO_SOCKET_TIMEOUT_MS", 45000)
	v.SetDefault("MONGO_MAX_POOL_SIZE", 10)

	v.SetDefault("DB_MONITOR_SCHEDULE", "@every 30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("FB_APP_ID", "")
	v.SetDefault("FB_APP_SECRET", "")
	v.SetDefault("FB_REDIRECT_URI", "")
	v.SetDefault("FB_AUTH_URL", "https://www.facebook.com/v18.0/dialog/oauth")
	v.SetDefault("FB_TOKEN_URL", "https://graph.facebook.com/v10.0/oauth/access_token")
	v.SetDefault("GRAPH_API_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("GRAPH_API_VERSION", "v16.0")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.MongoConnectTimeout = time.Duration(v.GetInt("MONGO_CONNECT_TIMEOUT_MS")) * time.Millisecond
	cfg.MongoServerSelectionTimeout = time.Duration(v.GetInt("MONGO_SERVER_SELECTION_TIMEOUT_MS")) * time.Millisecond
	cfg.MongoSocketTimeout = time.Duration(v.GetInt("MONGO_SOCKET_TIMEOUT_MS")) * time.Millisecond

	cfg.GraphAPIBaseURL = strings.TrimRight(cfg.GraphAPIBaseURL, "/")
	if strings.TrimSpace(cfg.MongoDatabase) == "" {
		cfg.MongoDatabase = databaseFromURI(cfg.MongoURI)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.TLSEnabled() {
		for _, path := range []string{c.TLSCertFile, c.TLSKeyFile} {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("TLS file %s not found", path)
			}
		}
	}
	return nil
}

// databaseFromURI returns the database named in the connection string path, if any.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultMongoDatabase
	}
	return name
}
