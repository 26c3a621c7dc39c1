package models

// Result status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Vote options accepted by POST /polls/vote/{pollid}
const (
	VoteOption1 = "1"
	VoteOption2 = "2"
)

// Domain types

// Poll is the JSON shape of a poll document
type Poll struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Option1  string `json:"option1"`
	Option2  string `json:"option2"`
	Votes1   int    `json:"votes1"`
	Votes2   int    `json:"votes2"`
	Revision string `json:"revision,omitempty"`
}

// Response types

type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ResultResponse is the envelope used by every poll endpoint
type ResultResponse struct {
	Result Result `json:"result"`
}

type ListPollsResponse struct {
	Result Result `json:"result"`
	Polls  []Poll `json:"polls"`
}

type PollResponse struct {
	Result Result `json:"result"`
	Poll   Poll   `json:"poll"`
}

// Page contexts

// StaffPage is the template context for /staff and /staff/{name}.
// Name and Bio are empty when no known staff member was requested.
type StaffPage struct {
	People []string
	Name   string
	Bio    string
}
