// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Open opens a connection pool for the named driver.
// SQLite allows one writer per file, so its pool is limited to a single
// connection and statements from concurrent requests queue in the pool
// instead of failing with SQLITE_BUSY.
func Open(driver, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
