package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`                // current application environment (local, dev, production etc)
	LogLevel         string `mapstructure:"log_level"`          // overrides the environment's default log level when set
	QuestionsPerPage int    `mapstructure:"questions_per_page"` // page size of GET /questions
	TelegramAPIToken string `mapstructure:"-"`                  // Telegram API token; the bot is disabled when empty
	HTTP             HTTP   `mapstructure:"http"`               // HTTP server section
	DB               DB     `mapstructure:"database"`           // database configuration section
	Redis            Redis  `mapstructure:"redis"`              // category cache section
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
	Migrate         bool          `mapstructure:"migrate"`           // apply embedded migrations on start
}

// Redis contains cache parameters. An empty URL disables caching.
type Redis struct {
	URL string        `mapstructure:"-"`
	TTL time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Load reads configuration from the .env file, config files and environment variables.
// configDir is searched for config.yaml; a missing file is not an error.
func Load(configDir string) (*Config, error) {
	// Values from .env never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_per_page", 10)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "15s")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.ttl", "10m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.URL = v.GetString("redis_url")

	if cfg.QuestionsPerPage <= 0 {
		return nil, fmt.Errorf("questions_per_page must be positive, got %d", cfg.QuestionsPerPage)
	}

	return &cfg, nil
}
