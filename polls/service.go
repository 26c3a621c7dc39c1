// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/pollsite/docstore"
	"github.com/danielhkuo/pollsite/logging"
	"github.com/danielhkuo/pollsite/models"
)

// DocumentStore is the subset of docstore.Store the service needs
type DocumentStore interface {
	RetrieveAll(ctx context.Context) ([]docstore.Document, error)
	Retrieve(ctx context.Context, id string) (docstore.Document, error)
	Create(ctx context.Context, body json.RawMessage) (id, rev string, err error)
	Update(ctx context.Context, id, rev string, body json.RawMessage) (string, error)
	Delete(ctx context.Context, id, rev string) error
}

// CreateInput holds the raw form values for a new poll
type CreateInput struct {
	Title   string
	Option1 string
	Option2 string
}

type Service struct {
	store DocumentStore
}

func NewService(store DocumentStore) *Service {
	return &Service{store: store}
}

// List returns every poll in the store
func (s *Service) List(ctx context.Context) ([]models.Poll, error) {
	docs, err := s.store.RetrieveAll(ctx)
	if err != nil {
		slog.Error("failed to list polls", logging.Err(err))
		return nil, fmt.Errorf("%w: %w", ErrServer, err)
	}

	polls := make([]models.Poll, 0, len(docs))
	for _, doc := range docs {
		polls = append(polls, decodePoll(doc))
	}
	return polls, nil
}

// Get returns a single poll
func (s *Service) Get(ctx context.Context, id string) (models.Poll, error) {
	doc, err := s.retrieve(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}
	return decodePoll(doc), nil
}

// Create validates the input and stores a new poll with both counters at zero
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Poll, error) {
	poll := models.Poll{
		Title:   strings.TrimSpace(in.Title),
		Option1: strings.TrimSpace(in.Option1),
		Option2: strings.TrimSpace(in.Option2),
	}

	for _, f := range []struct{ name, value string }{
		{"title", poll.Title},
		{"option1", poll.Option1},
		{"option2", poll.Option2},
	} {
		if f.value == "" {
			return models.Poll{}, fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}

	body, err := json.Marshal(pollDocument{
		Title:   poll.Title,
		Option1: poll.Option1,
		Option2: poll.Option2,
	})
	if err != nil {
		return models.Poll{}, fmt.Errorf("%w: %w", ErrServer, err)
	}

	id, rev, err := s.store.Create(ctx, body)
	if err != nil {
		slog.Error("failed to create poll", logging.Err(err))
		return models.Poll{}, fmt.Errorf("%w: %w", ErrServer, err)
	}

	poll.ID = id
	poll.Revision = rev

	slog.Info("poll created", "poll_id", id, "title", poll.Title)

	return poll, nil
}

// Vote adds one vote to option "1" or "2" of a poll.
// The write carries the revision that was read; if the poll changed in
// between, ErrConflict is returned and nothing is retried.
func (s *Service) Vote(ctx context.Context, id, vote string) (models.Poll, error) {
	doc, err := s.retrieve(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}

	var counter string
	switch strings.TrimSpace(vote) {
	case models.VoteOption1:
		counter = "votes1"
	case models.VoteOption2:
		counter = "votes2"
	default:
		return models.Poll{}, fmt.Errorf("%w: bad vote option", ErrValidation)
	}

	fields := decodeFields(doc.Body)
	fields[counter] = intValue(fields[counter]) + 1

	body, err := json.Marshal(fields)
	if err != nil {
		return models.Poll{}, fmt.Errorf("%w: %w", ErrServer, err)
	}

	newRev, err := s.store.Update(ctx, doc.ID, doc.Rev, body)
	if err != nil {
		if errors.Is(err, docstore.ErrConflict) || errors.Is(err, docstore.ErrNotFound) {
			slog.Warn("vote conflict", "poll_id", id, "rev", doc.Rev)
			return models.Poll{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		slog.Error("failed to record vote", "poll_id", id, logging.Err(err))
		return models.Poll{}, fmt.Errorf("%w: %w", ErrServer, err)
	}

	poll := pollFromFields(doc.ID, newRev, fields)

	slog.Info("vote recorded", "poll_id", id, "option", counter, "rev", newRev)

	return poll, nil
}

// Delete removes a poll using the revision it currently has
func (s *Service) Delete(ctx context.Context, id string) error {
	doc, err := s.retrieve(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.ID, doc.Rev); err != nil {
		if errors.Is(err, docstore.ErrConflict) || errors.Is(err, docstore.ErrNotFound) {
			slog.Warn("delete conflict", "poll_id", id, "rev", doc.Rev)
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		slog.Error("failed to delete poll", "poll_id", id, logging.Err(err))
		return fmt.Errorf("%w: %w", ErrServer, err)
	}

	slog.Info("poll deleted", "poll_id", id)

	return nil
}

// retrieve returns ErrNotFound only when the store has no such poll.
// Any other failure is a server error, the poll may well exist.
func (s *Service) retrieve(ctx context.Context, id string) (docstore.Document, error) {
	if strings.TrimSpace(id) == "" {
		return docstore.Document{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	doc, err := s.store.Retrieve(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return docstore.Document{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		slog.Error("failed to retrieve poll", "poll_id", id, logging.Err(err))
		return docstore.Document{}, fmt.Errorf("%w: %w", ErrServer, err)
	}
	return doc, nil
}
