package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata" // FISCAL_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverBolt     = "bolt"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	DatabaseMaxConn int32
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	MigrationsPath  string

	StoreDriver string
	BoltPath    string

	// Interest sweep; a zero interval disables the in-process scheduler
	InterestSweepInterval time.Duration
	InterestWorkers       int

	// Fiscal years are calendar years in this location
	FiscalLocation *time.Location

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PGSQL_MAX_CONNS", 10)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("BOLT_PATH", "paluwagan.db")
	v.SetDefault("INTEREST_SWEEP_INTERVAL", "0")
	v.SetDefault("INTEREST_WORKERS", 8)
	v.SetDefault("FISCAL_TIMEZONE", "UTC")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override the defaults and the .env file.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		DatabaseMaxConn: v.GetInt32("PGSQL_MAX_CONNS"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		StoreDriver:     strings.ToLower(v.GetString("STORE_DRIVER")),
		BoltPath:        v.GetString("BOLT_PATH"),
		InterestWorkers: v.GetInt("INTEREST_WORKERS"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("BOLT_PATH must be set when STORE_DRIVER=bolt")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, StoreDriverPostgres, StoreDriverBolt)
	}

	// Interest sweep interval (e.g., "24h"); "0" disables it
	intervalStr := v.GetString("INTEREST_SWEEP_INTERVAL")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		log.Printf("Warning: Invalid value for INTEREST_SWEEP_INTERVAL ('%s'). Scheduler disabled.\n", intervalStr)
		interval = 0
	}
	cfg.InterestSweepInterval = interval

	zone := v.GetString("FISCAL_TIMEZONE")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid FISCAL_TIMEZONE %q: %w", zone, err)
	}
	cfg.FiscalLocation = loc

	if cfg.InterestWorkers < 1 {
		log.Printf("Warning: INTEREST_WORKERS must be positive, got %d. Defaulting to 8.\n", cfg.InterestWorkers)
		cfg.InterestWorkers = 8
	}
	if cfg.DatabaseMaxConn < 1 {
		cfg.DatabaseMaxConn = 10
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
