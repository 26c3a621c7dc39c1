// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response, domain and page types.

# Response Types

Every poll endpoint answers with a result envelope:

	{"result": {"status": "ok"}}
	{"result": {"status": "ok", "id": "..."}}
	{"result": {"status": "error", "message": "..."}}

  - ResultResponse: result only
  - ListPollsResponse: result, polls
  - PollResponse: result, poll

# Domain Types

  - Poll: id, title, option1, option2, votes1, votes2, revision

# Page Types

  - StaffPage: people (sorted), name, bio

# Constants

Result status values:

	StatusOK    = "ok"
	StatusError = "error"

Vote options:

	VoteOption1 = "1"
	VoteOption2 = "2"
*/
package models
