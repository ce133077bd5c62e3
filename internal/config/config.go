package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Default value constants
const (
	DefaultServerPort     = 8090
	DefaultBackendTimeout = 30 * time.Second
	DefaultLogPageSize    = 25
	MaxLogPageSize        = 100
	ItemBatchSize         = 200
	ItemSearchLimit       = 50
)

// Config represents the complete dashboard service configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Backend    BackendConfig    `mapstructure:"backend"`
	Session    SessionConfig    `mapstructure:"session"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Environment  string        `mapstructure:"environment"`
	Debug        bool          `mapstructure:"debug"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// BackendConfig represents the guild manager backend API configuration
type BackendConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	ItemBatchSize int           `mapstructure:"item_batch_size"`
	SearchLimit   int           `mapstructure:"search_limit"`
}

// SessionConfig represents session handling configuration
type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

// MonitoringConfig represents monitoring configuration
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}

// Load loads configuration from environment variables and files
func Load() (*Config, error) {
	// Default configuration
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", DefaultServerPort)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.debug", true)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("backend.base_url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", "30s")
	viper.SetDefault("backend.item_batch_size", ItemBatchSize)
	viper.SetDefault("backend.search_limit", ItemSearchLimit)

	viper.SetDefault("session.token_file", "")

	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.health_path", "/health")

	// Read environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("DASHBOARD")

	// Explicit environment variable mapping
	if err := viper.BindEnv("server.host", "DASHBOARD_SERVER_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind server.host env: %w", err)
	}
	if err := viper.BindEnv("server.port", "DASHBOARD_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind server.port env: %w", err)
	}
	if err := viper.BindEnv("server.environment", "DASHBOARD_ENVIRONMENT"); err != nil {
		return nil, fmt.Errorf("failed to bind server.environment env: %w", err)
	}
	if err := viper.BindEnv("backend.base_url", "DASHBOARD_BACKEND_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind backend.base_url env: %w", err)
	}
	if err := viper.BindEnv("backend.timeout", "DASHBOARD_BACKEND_TIMEOUT"); err != nil {
		return nil, fmt.Errorf("failed to bind backend.timeout env: %w", err)
	}
	if err := viper.BindEnv("session.token_file", "DASHBOARD_TOKEN_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind session.token_file env: %w", err)
	}

	// Read configuration file (optional)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/dashboard")

	// Read config file (no error if absent)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}
