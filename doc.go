// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollsite server.

pollsite serves two small applications from one process: a staff bio site
rendered from HTML templates, and a two-option poll API stored as revisioned
JSON documents.

# Starting the Server

With no configuration the server uses a local SQLite file and listens on
port 8090:

	go run .

PostgreSQL instead:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8090 -t postgres -d "postgres://..." -bios staff.yaml

# Configuration

  - APP_ENV (-env): local, dev or prod (default: local)
  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default for sqlite: file:polls.db with
    busy_timeout and WAL pragmas)
  - BIOS_FILE (-bios): YAML file of name: bio pairs (default: built-in crew)

Values are also read from a .env file when present (-env-file to pick
another). Flags win over environment variables.

# Architecture

  - handlers: HTTP request handlers (poll API, pages)
  - router: Route definitions using Go 1.22+ routing and chi middleware
  - middleware: CORS, logging, JSON and form helpers
  - polls: Poll validation, voting and optimistic concurrency
  - docstore: Revisioned JSON documents over database/sql
  - bios: Staff bio directory
  - models: Response types and page contexts
  - db: Schema creation
  - logging: slog handlers per environment
  - cliparse: Configuration parsing

On SIGINT or SIGTERM the server stops accepting connections and waits up to
ten seconds for in-flight requests.

See package documentation for each component.
*/
package main
