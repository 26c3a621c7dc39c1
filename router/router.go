// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/pollsite/bios"
	"github.com/danielhkuo/pollsite/handlers"
	"github.com/danielhkuo/pollsite/middleware"
	"github.com/danielhkuo/pollsite/polls"
)

func NewRouter(svc *polls.Service, dir *bios.Directory) (http.Handler, error) {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc)
	pageHandler, err := handlers.NewPageHandler(dir)
	if err != nil {
		return nil, err
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll API
	mux.HandleFunc("GET /polls/list", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls/create", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{pollid}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /polls/vote/{pollid}", middleware.WithLogging(pollHandler.Vote))
	mux.HandleFunc("POST /polls/delete/{pollid}", middleware.WithLogging(pollHandler.DeletePoll))

	// Staff site
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	mux.HandleFunc("GET /staff", middleware.WithLogging(pageHandler.Staff))
	mux.HandleFunc("GET /staff/{name}", middleware.WithLogging(pageHandler.StaffMember))
	mux.HandleFunc("GET /contact", middleware.WithLogging(pageHandler.Contact))

	return chain(mux), nil
}

// chain wraps the mux, outermost first: CORS, request id, panic recovery
func chain(next http.Handler) http.Handler {
	return middleware.CORS(chimw.RequestID(chimw.Recoverer(next)))
}
