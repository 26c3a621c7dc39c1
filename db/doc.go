// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Opening

	conn, err := db.Open(cfg.DriverName(), cfg.DatabaseURL)

For SQLite the pool holds a single connection: the file has one writer at a
time, and queueing in the pool keeps concurrent requests from failing with
SQLITE_BUSY. PostgreSQL keeps the default pool.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Works against both PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - document: one revisioned JSON document per row (id, rev, body)

The document table backs the docstore package. Polls are stored as
documents; their counters live in the JSON body, not in columns.
*/
package db
