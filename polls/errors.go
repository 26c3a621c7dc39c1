// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

var (
	// ErrValidation means the request was rejected before touching the store
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("poll not found")
	// ErrConflict means the poll changed between read and write
	ErrConflict = errors.New("poll was modified concurrently")
	ErrServer   = errors.New("store failure")
)
