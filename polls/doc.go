// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements two-option polls on top of a revisioned document store.

	svc := polls.NewService(docstore.New(db))

# Operations

	List(ctx)            → all polls, or ErrServer
	Get(ctx, id)         → one poll, or ErrNotFound
	Create(ctx, input)   → new poll with votes1 = votes2 = 0
	Vote(ctx, id, "1")   → votes1 + 1
	Delete(ctx, id)      → removes the poll

# Errors

  - ErrValidation: blank field or bad vote option, nothing was written
  - ErrNotFound: the store has no poll with that id
  - ErrConflict: the poll changed between read and write
  - ErrServer: any other store failure, wraps the store's error

Vote and Delete read the poll, then write with the revision they read. A
concurrent writer makes that revision stale and the call fails with
ErrConflict. The caller decides whether to try again.
*/
package polls
