package chat

import "errors"

// The full error taxonomy of the layer. Every operation failure is one of
// these, matched by callers with errors.Is; anything else reaching the
// HTTP surface is an internal error. All failures are terminal for the
// request, there are no retries.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)
