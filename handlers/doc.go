// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the poll API and the
staff bio pages.

# Handler Types

  - PollHandler: poll list, create, get, vote and delete (JSON)
  - PageHandler: home, staff and contact pages (HTML)

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(polls.NewService(docstore.New(db)))
	pageHandler, err := handlers.NewPageHandler(bios.Default())

# Poll Endpoints

Request bodies are url-encoded forms. Every response carries a result
envelope:

	GET  /polls/list             → ListPolls   {"result":{"status":"ok"},"polls":[...]}
	POST /polls/create           → CreatePoll  {"result":{"status":"ok","id":"..."}}
	GET  /polls/{pollid}         → GetPoll     {"result":{"status":"ok"},"poll":{...}}
	POST /polls/vote/{pollid}    → Vote        {"result":{"status":"ok"}}
	POST /polls/delete/{pollid}  → DeletePoll  {"result":{"status":"ok"}}

Service errors map to status codes in one place:

	polls.ErrValidation → 400
	polls.ErrNotFound   → 404
	polls.ErrConflict   → 409
	anything else       → 500 (message carries the store error)

A failed list is the exception: it answers 200 with status "error".
Conflicts are never retried; the client re-reads and votes again.

# Pages

Templates live in templates/ and are embedded into the binary. They are
parsed once by NewPageHandler; a page is rendered into a buffer first so a
template error produces a clean 500 instead of half a page.

	GET /              → Home
	GET /staff         → Staff        (sorted list of names)
	GET /staff/{name}  → StaffMember  (adds the bio when the name is known)
	GET /contact       → Contact
*/
package handlers
