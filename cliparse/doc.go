// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Env: Logging environment, one of local, dev, prod (default: local)
  - Port: Server listen port (default: 8090)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: file:polls.db with
    busy_timeout and WAL pragmas)
  - BiosFile: Optional YAML file with staff bios

# CLI Flags

	-env       Environment
	-p         Server port
	-t         Database type
	-d         Database URL
	-bios      Bios file
	-env-file  .env file to load before reading the environment

# Environment Variables

Flags fall back to environment variables:

	APP_ENV       → -env
	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	BIOS_FILE     → -bios

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded automatically when present; it never overrides
variables that are already set.

# Validation

ParseFlags returns an error when:

  - DATABASE_TYPE is postgres and no DATABASE_URL is provided
  - DATABASE_TYPE or APP_ENV has an unknown value
  - PORT is not a valid TCP port

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
*/
package cliparse
