// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/list", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, bytes, duration_ms). The response writer is wrapped with chi's
WrapResponseWriter so the status and size can be read after the handler
returns. The request id comes from chi's RequestID middleware when it runs
further out; otherwise it is empty.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with header Content-Type. Preflight
requests are answered directly.

# JSON Helpers

Every poll response uses the result envelope:

	middleware.OKResponse(w, pollID)                      // {"result":{"status":"ok","id":"..."}}
	middleware.ErrorResponse(w, http.StatusConflict, msg) // {"result":{"status":"error","message":"..."}}
	middleware.JSONResponse(w, http.StatusOK, data)

# Form Bodies

Poll requests are url-encoded forms:

	form, err := middleware.ParseFormBody(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	vote := form.Get("vote")

ErrNoBody is returned for an empty body and ErrNotURLEncoded for any other
content type. Query string values are never mixed in.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the remote field of request logs.
*/
package middleware
