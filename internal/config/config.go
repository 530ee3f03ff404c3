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

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB       `mapstructure:"database"` // database configuration section
	OpenTDB          OpenTDB  `mapstructure:"opentdb"`  // question source section
	Telegram         Telegram `mapstructure:"telegram"` // bot transport section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
	HealthCheck     time.Duration `mapstructure:"health_check"`      // ping interval while running, 0 disables
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// OpenTDB describes which questions are requested for every new game.
type OpenTDB struct {
	BaseURL    string        `mapstructure:"base_url"`   // api.php endpoint
	Amount     int           `mapstructure:"amount"`     // questions per game (1..50)
	Category   int           `mapstructure:"category"`   // category id, 0 for any
	Difficulty string        `mapstructure:"difficulty"` // easy, medium, hard or empty
	Type       string        `mapstructure:"type"`       // multiple, boolean or empty
	Timeout    time.Duration `mapstructure:"timeout"`    // bound for a single fetch
}

// Telegram contains bot transport options.
type Telegram struct {
	Debug       bool `mapstructure:"debug"`        // log raw Bot API traffic
	PollTimeout int  `mapstructure:"poll_timeout"` // long polling timeout, seconds
}

// Load reads configuration from ./config/config.yaml, .env and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configDir string) (*Config, error) {
	// A missing .env is fine; the process environment may already be populated.
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
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("database.health_check", "1m")
	v.SetDefault("opentdb.base_url", "https://opentdb.com/api.php")
	v.SetDefault("opentdb.amount", 10)
	v.SetDefault("opentdb.category", 0)
	v.SetDefault("opentdb.difficulty", "")
	v.SetDefault("opentdb.type", "")
	v.SetDefault("opentdb.timeout", "5s")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.poll_timeout", 60)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

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
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := cfg.OpenTDB.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (o OpenTDB) validate() error {
	if o.Amount < 1 || o.Amount > 50 {
		return fmt.Errorf("%w: opentdb.amount must be between 1 and 50, got %d", ErrInvalidConfig, o.Amount)
	}
	if o.Category < 0 {
		return fmt.Errorf("%w: opentdb.category must not be negative", ErrInvalidConfig)
	}

	switch o.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: unknown opentdb.difficulty %q", ErrInvalidConfig, o.Difficulty)
	}

	switch o.Type {
	case "", "multiple", "boolean":
	default:
		return fmt.Errorf("%w: unknown opentdb.type %q", ErrInvalidConfig, o.Type)
	}

	if o.Timeout <= 0 {
		return fmt.Errorf("%w: opentdb.timeout must be positive", ErrInvalidConfig)
	}

	return nil
}
