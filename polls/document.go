// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/danielhkuo/pollsite/docstore"
	"github.com/danielhkuo/pollsite/models"
)

// pollDocument is the stored body of a new poll
type pollDocument struct {
	Title   string `json:"title"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Votes1  int    `json:"votes1"`
	Votes2  int    `json:"votes2"`
}

func decodePoll(doc docstore.Document) models.Poll {
	return pollFromFields(doc.ID, doc.Rev, decodeFields(doc.Body))
}

// decodeFields decodes a body into a generic map so that fields this
// package does not know about survive a vote. Numbers stay json.Number so
// large integers are written back exactly.
func decodeFields(body json.RawMessage) map[string]any {
	fields := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}

// pollFromFields builds a Poll; missing or mistyped fields become "" or 0
func pollFromFields(id, rev string, fields map[string]any) models.Poll {
	return models.Poll{
		ID:       id,
		Title:    stringValue(fields["title"]),
		Option1:  stringValue(fields["option1"]),
		Option2:  stringValue(fields["option2"]),
		Votes1:   intValue(fields["votes1"]),
		Votes2:   intValue(fields["votes2"]),
		Revision: rev,
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue reads a vote counter. Negative, fractional, out of range and
// non-numeric values read as 0.
func intValue(v any) int {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 0)
		if err != nil || i < 0 {
			return 0
		}
		return int(i)
	case int:
		if n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}
