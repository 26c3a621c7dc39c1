// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollsite/logging"
	"github.com/danielhkuo/pollsite/middleware"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/polls"
)

const badVoteMessage = "Bad vote option"

type PollHandler struct {
	svc *polls.Service
}

func NewPollHandler(svc *polls.Service) *PollHandler {
	return &PollHandler{svc: svc}
}

// ListPolls handles GET /polls/list
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		// Store failures are reported in the envelope, not the status line
		middleware.ErrorResponse(w, http.StatusOK, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{
		Result: models.Result{Status: models.StatusOK},
		Polls:  list,
	})
}

// CreatePoll handles POST /polls/create
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	form, err := middleware.ParseFormBody(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	poll, err := h.svc.Create(r.Context(), polls.CreateInput{
		Title:   form.Get("title"),
		Option1: form.Get("option1"),
		Option2: form.Get("option2"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.OKResponse(w, poll.ID)
}

// GetPoll handles GET /polls/{pollid}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.svc.Get(r.Context(), r.PathValue("pollid"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Result: models.Result{Status: models.StatusOK},
		Poll:   poll,
	})
}

// Vote handles POST /polls/vote/{pollid}
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollid")

	form, err := middleware.ParseFormBody(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Vote(r.Context(), pollID, form.Get("vote")); err != nil {
		if errors.Is(err, polls.ErrValidation) {
			middleware.ErrorResponse(w, http.StatusBadRequest, badVoteMessage)
			return
		}
		writeError(w, err)
		return
	}

	middleware.OKResponse(w, "")
}

// DeletePoll handles POST /polls/delete/{pollid}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("pollid")); err != nil {
		writeError(w, err)
		return
	}

	middleware.OKResponse(w, "")
}

// statusFor maps poll service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, polls.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, polls.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, polls.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.Error("poll request failed", logging.Err(err))
	}
	middleware.ErrorResponse(w, code, err.Error())
}
