// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the poll API and the staff site.

# Route Registration

NewRouter builds an http.ServeMux with all endpoints and wraps it in the
middleware chain:

	handler, err := router.NewRouter(svc, bios.Default())

The error comes from parsing the page templates.

# Endpoints

Health:

	GET /health

Poll API (url-encoded request bodies, JSON responses):

	GET  /polls/list            - All polls
	POST /polls/create          - Create poll (title, option1, option2)
	GET  /polls/{pollid}        - Single poll with its revision
	POST /polls/vote/{pollid}   - Vote (vote=1 or vote=2)
	POST /polls/delete/{pollid} - Delete poll

Staff site (HTML):

	GET /               - Home
	GET /staff          - Staff list
	GET /staff/{name}   - Staff list plus one bio
	GET /contact        - Contact page

/polls/list is more specific than /polls/{pollid}, so the list route wins.

# Middleware

Outermost first:

	middleware.CORS → chi RequestID → chi Recoverer → ServeMux

Each route is also wrapped in middleware.WithLogging, which picks up the
request id set by chi. A panicking handler yields a 500 and the server keeps
serving.
*/
package router
