// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"bytes"
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrConflict        = errors.New("document update conflict")
	ErrInvalidDocument = errors.New("document body must be a JSON object")
)

// Document is a stored JSON object with its id and current revision
type Document struct {
	ID   string
	Rev  string
	Body json.RawMessage
}

// Store is a revisioned document collection backed by a SQL table.
// Every write must name the revision it read; stale revisions are rejected.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// RetrieveAll returns every document ordered by id
func (s *Store) RetrieveAll(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rev, body FROM document ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		var body string
		if err := rows.Scan(&doc.ID, &doc.Rev, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Body = json.RawMessage(body)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}

// Retrieve returns a single document, or ErrNotFound
func (s *Store) Retrieve(ctx context.Context, id string) (Document, error) {
	var doc Document
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, rev, body FROM document WHERE id = $1
	`, id).Scan(&doc.ID, &doc.Rev, &body)

	if err == sql.ErrNoRows {
		return Document{}, fmt.Errorf("retrieve %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to query document %q: %w", id, err)
	}

	doc.Body = json.RawMessage(body)
	return doc, nil
}

// Create stores a new document under a generated id and returns its first revision
func (s *Store) Create(ctx context.Context, body json.RawMessage) (id, rev string, err error) {
	if !isObject(body) {
		return "", "", ErrInvalidDocument
	}

	id = NewID()
	rev = nextRevision("", body)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO document (id, rev, body)
		VALUES ($1, $2, $3)
	`, id, rev, string(body))
	if err != nil {
		return "", "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, rev, nil
}

// Update replaces the body of a document if rev is still current and
// returns the new revision. A stale rev yields ErrConflict, a missing
// document ErrNotFound.
func (s *Store) Update(ctx context.Context, id, rev string, body json.RawMessage) (string, error) {
	if !isObject(body) {
		return "", ErrInvalidDocument
	}

	newRev := nextRevision(rev, body)

	res, err := s.db.ExecContext(ctx, `
		UPDATE document
		SET rev = $1, body = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND rev = $4
	`, newRev, string(body), id, rev)
	if err != nil {
		return "", fmt.Errorf("failed to update document %q: %w", id, err)
	}

	if err := s.checkWritten(ctx, res, id, rev); err != nil {
		return "", err
	}

	return newRev, nil
}

// Delete removes a document if rev is still current
func (s *Store) Delete(ctx context.Context, id, rev string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM document WHERE id = $1 AND rev = $2
	`, id, rev)
	if err != nil {
		return fmt.Errorf("failed to delete document %q: %w", id, err)
	}

	return s.checkWritten(ctx, res, id, rev)
}

// checkWritten tells a stale revision apart from a missing document
// when a conditional write touched no rows.
func (s *Store) checkWritten(ctx context.Context, res sql.Result, id, rev string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	var count int
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM document WHERE id = $1
	`, id).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to query document %q: %w", id, err)
	}

	if count == 0 {
		return fmt.Errorf("write %q: %w", id, ErrNotFound)
	}
	return fmt.Errorf("write %q at rev %s: %w", id, rev, ErrConflict)
}

// NewID returns a 32 character hex document id
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// nextRevision derives the revision following prev for the given body:
// "<generation>-<md5 of body>", generation starting at 1.
func nextRevision(prev string, body []byte) string {
	sum := md5.Sum(body)
	return strconv.Itoa(Generation(prev)+1) + "-" + hex.EncodeToString(sum[:])
}

// Generation returns the numeric prefix of a revision, or 0 if malformed
func Generation(rev string) int {
	n, _, ok := strings.Cut(rev, "-")
	if !ok {
		return 0
	}
	g, err := strconv.Atoi(n)
	if err != nil {
		return 0
	}
	return g
}

func isObject(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
