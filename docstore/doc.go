// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docstore is a revisioned JSON document collection on top of database/sql.

Each document has an id, a revision and a JSON object body. Writes are
conditional on the revision the caller read (optimistic concurrency):

	id, rev, err := store.Create(ctx, body)
	newRev, err := store.Update(ctx, id, rev, changed)
	err = store.Delete(ctx, id, newRev)

A stale revision yields ErrConflict and a missing document ErrNotFound.
The check runs inside a single UPDATE or DELETE statement, so of two writers
holding the same revision exactly one wins. Nothing here retries.

Revisions look like "3-9e107d9d372bb6826bd81d3542a419d6": a generation
counter followed by the MD5 of the body.

The store works with any driver that accepts $N placeholders; the server
uses lib/pq for PostgreSQL and modernc.org/sqlite for SQLite.
*/
package docstore
