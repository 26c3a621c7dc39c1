// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Environments understood by the logging package
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultSQLiteURL is used when DATABASE_TYPE is sqlite and no URL was given.
// Writers wait up to 5s for a lock instead of failing with SQLITE_BUSY.
const DefaultSQLiteURL = "file:polls.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

type Config struct {
	Env          string `env:"APP_ENV" env-default:"local"`
	Port         int    `env:"PORT" env-default:"8090"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" env-default:"sqlite"`
	BiosFile     string `env:"BIOS_FILE"`
}

// ParseFlags loads .env, reads the environment and applies CLI overrides
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var envFile string

	fs := flag.NewFlagSet("pollsite", flag.ContinueOnError)

	fs.StringVar(&flags.Env, "env", "", "Environment (local, dev, prod)")
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&flags.BiosFile, "bios", "", "YAML file with staff bios")
	fs.StringVar(&envFile, "env-file", "", "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	// CLI overrides env
	if flags.Env != "" {
		cfg.Env = flags.Env
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}
	if flags.DatabaseType != "" {
		cfg.DatabaseType = flags.DatabaseType
	}
	if flags.BiosFile != "" {
		cfg.BiosFile = flags.BiosFile
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return Config{}, fmt.Errorf("invalid environment %q (use local, dev or prod)", cfg.Env)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLiteURL
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	return cfg, nil
}

// DriverName returns the database/sql driver registered for the configured type
func (c Config) DriverName() string {
	if c.DatabaseType == DatabasePostgres {
		return "postgres"
	}
	return "sqlite"
}

// loadEnvFile loads an explicit env file, or ./.env when it exists.
// Variables already set in the environment are not overwritten.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}
