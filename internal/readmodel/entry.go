package readmodel

import (
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
)

// Entry is a point-in-time snapshot of one cache key.
type Entry[T any] struct {
	Key Key
	// Data is the last successfully fetched value; valid only when HasData is set.
	Data    T
	HasData bool
	// LastFetchedAt is the completion time of the last successful fetch.
	LastFetchedAt time.Time
	InFlight      bool
	// Err is the failure of the most recent fetch, cleared by the next success.
	Err error
}

// ErrorKind reports the ledger error kind of the last failed fetch.
func (e Entry[T]) ErrorKind() (ledger.Kind, bool) {
	if e.Err == nil {
		return "", false
	}
	return ledger.KindOf(e.Err)
}

// Stale reports whether the entry has no data or was last refreshed more than maxAge ago.
func (e Entry[T]) Stale(now time.Time, maxAge time.Duration) bool {
	return !e.HasData || now.Sub(e.LastFetchedAt) > maxAge
}
