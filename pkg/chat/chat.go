// Package chat is the store access layer: every operation the HTTP surface
// exposes is a sequence of point reads, point writes and ascending prefix
// scans over the ordered key-value store. No multi-key transactions are
// used anywhere; the races that allows (duplicate signup, retention over-
// or under-shoot under concurrent appends) are accepted and documented on
// the operations concerned.
package chat

import (
	"time"

	"github.com/google/uuid"

	"chatkv/pkg/store"
)

// RetentionCeiling is the maximum number of entries kept per conversation
// or group log. Appending to a full log evicts exactly the oldest entry.
const RetentionCeiling = 25

// tsLayout is fixed-width ISO-8601 with millisecond precision, so
// timestamps sort chronologically as plain strings. Two messages landing
// in the same millisecond of the same log share a key and the second
// overwrites the first; that precision limit is accepted.
const tsLayout = "2006-01-02T15:04:05.000Z"

// Service executes chat operations against an injected store handle.
// Now and NewID are swappable so tests control timestamps and ids.
type Service struct {
	Store *store.Store
	Now   func() time.Time
	NewID func() string
}

// New returns a Service using the wall clock and uuid-v4 ids.
func New(st *store.Store) *Service {
	return &Service{
		Store: st,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

func (s *Service) timestamp() string {
	return s.Now().UTC().Format(tsLayout)
}
