package querycache

import (
	"context"
	"time"
)

// State is the lifecycle position of a cache entry.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Result is what a loader hands back to the cache.
type Result[T any] struct {
	Records []T
	Total   int
}

// Entry is a snapshot of one cached query. Records is shared with the
// cache and must not be modified.
type Entry[T any] struct {
	Key       Key
	Records   []T
	Total     int
	FetchedAt time.Time
	State     State
	Stale     bool
	Err       error
}

// HasData reports whether the entry ever loaded successfully.
func (e Entry[T]) HasData() bool {
	return !e.FetchedAt.IsZero()
}

// call is one issued request for a key.
type call struct {
	seq     uint64
	gen     uint64
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
	// invalidated is set when Invalidate dropped the call; its waiters
	// reissue rather than fail.
	invalidated bool
}

type slot[T any] struct {
	Entry[T]

	// gen is bumped by invalidation and cancellation; a call from an older
	// generation is superseded and its completion is dropped.
	gen uint64
	// applied is the sequence of the last completion written to the entry.
	applied  uint64
	inflight *call
	// prev is the state to fall back to when an in-flight call is dropped.
	prev State
}
