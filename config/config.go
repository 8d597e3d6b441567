package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_DIR=data
//	STORE_BACKEND=json
//	TRADING_DAYS=252
//	MAX_RANGE_DAYS=3650
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=etfpulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Data     DataConfig     // Data set location and storage backend
	Stats    StatsConfig    // Price window and statistics tuning
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// DataConfig points at the JSON data set and selects where the API reads from.
//
// Fields:
//   - Dir: root of the data set (contains etfs.json and prices/).
//   - Backend: "json" to serve straight from the files, "postgres" to serve
//     from the database populated by the ingest mode.
type DataConfig struct {
	Dir     string
	Backend string
}

// ETFsPath is the location of the catalog file.
func (d DataConfig) ETFsPath() string { return filepath.Join(d.Dir, "etfs.json") }

// PricesDir is the directory holding one <SYMBOL>.json file per fund.
func (d DataConfig) PricesDir() string { return filepath.Join(d.Dir, "prices") }

// StatsConfig tunes the price window limits and the volatility annualization.
type StatsConfig struct {
	TradingDays  int
	MaxRangeDays int
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance, populated once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("STORE_BACKEND", BackendJSON)

	viper.SetDefault("TRADING_DAYS", 252)
	viper.SetDefault("MAX_RANGE_DAYS", 3650)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "etfpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Data: DataConfig{
			Dir:     viper.GetString("DATA_DIR"),
			Backend: strings.ToLower(strings.TrimSpace(viper.GetString("STORE_BACKEND"))),
		},
		Stats: StatsConfig{
			TradingDays:  viper.GetInt("TRADING_DAYS"),
			MaxRangeDays: viper.GetInt("MAX_RANGE_DAYS"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the database/sql connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// missingFields lists the keys that are required but empty or invalid.
// Postgres settings only matter for the postgres backend.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Data.Dir == "" {
		missing = append(missing, "DATA_DIR")
	}
	if cfg.Data.Backend != BackendJSON && cfg.Data.Backend != BackendPostgres {
		missing = append(missing, "STORE_BACKEND")
	}
	if cfg.Stats.TradingDays <= 0 {
		missing = append(missing, "TRADING_DAYS")
	}
	if cfg.Stats.MaxRangeDays <= 0 {
		missing = append(missing, "MAX_RANGE_DAYS")
	}

	if cfg.Data.Backend == BackendPostgres {
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	}

	return missing
}

// validateConfig terminates the application when required variables are missing.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
