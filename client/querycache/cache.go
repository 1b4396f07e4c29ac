// Package querycache keeps the last known result of every list query the
// client has issued.
//
// Each key has at most one request in flight; concurrent reads of the same
// key share it. Requests are tagged with a sequence number and the key's
// generation at issue time. Invalidation and cancellation bump the
// generation, so a completion from an older request is dropped instead of
// overwriting newer data. Entries are never evicted.
package querycache

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrSuperseded is returned to callers whose request was cancelled before
// it completed. Callers of a request dropped by Invalidate are served by a
// reissued request instead.
var ErrSuperseded = errors.New("querycache: request superseded")

// Loader fetches the data for one key. It receives a context owned by the
// cache, which is cancelled when the request is superseded.
type Loader[T any] func(ctx context.Context) (Result[T], error)

type options struct {
	maxAge time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Cache.
type Option func(*options)

// WithMaxAge makes Ready entries older than d count as stale. Zero, the
// default, keeps entries fresh until invalidated.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) { o.maxAge = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Cache holds the entries for one record type.
type Cache[T any] struct {
	mu      sync.Mutex
	slots   map[Key]*slot[T]
	seq     uint64
	flights singleflight.Group

	maxAge time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// New returns an empty cache.
func New[T any](opts ...Option) *Cache[T] {
	o := options{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T]{
		slots:  make(map[Key]*slot[T]),
		maxAge: o.maxAge,
		now:    o.now,
		logger: o.logger,
	}
}

// Get returns the current snapshot of key. The boolean is false when the
// key was never queried.
func (c *Cache[T]) Get(key Key) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[key]
	if !ok {
		return Entry[T]{Key: key, State: Idle}, false
	}
	return c.snapshotLocked(s), true
}

// Read serves key from the cache when it is Ready and fresh, and fetches it
// otherwise.
func (c *Cache[T]) Read(ctx context.Context, key Key, loader Loader[T]) (Entry[T], error) {
	c.mu.Lock()
	if s, ok := c.slots[key]; ok && s.State == Ready && !c.staleLocked(s) {
		e := c.snapshotLocked(s)
		c.mu.Unlock()
		return e, nil
	}
	c.mu.Unlock()

	return c.Fetch(ctx, key, loader)
}

// Fetch loads key, joining the in-flight request when one exists. On
// failure the entry moves to Error and keeps its previous records.
//
// When ctx ends first Fetch returns the current snapshot with ctx.Err();
// the shared request keeps running for the other waiters. When the request
// is invalidated before it completes, Fetch reads key again and returns
// that result.
func (c *Cache[T]) Fetch(ctx context.Context, key Key, loader Loader[T]) (Entry[T], error) {
	e, cl, err := c.fetch(ctx, key, loader)
	if errors.Is(err, ErrSuperseded) && c.wasInvalidated(cl) {
		c.logger.Debug("invalidated request reissued",
			zap.Stringer("key", key),
			zap.Uint64("seq", cl.seq),
		)
		return c.Read(ctx, key, loader)
	}
	return e, err
}

func (c *Cache[T]) wasInvalidated(cl *call) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cl.invalidated
}

func (c *Cache[T]) fetch(ctx context.Context, key Key, loader Loader[T]) (Entry[T], *call, error) {
	c.mu.Lock()
	s := c.slotLocked(key)
	cl := s.inflight
	if cl == nil {
		cl = c.startLocked(ctx, key, s)
	} else {
		c.logger.Debug("joining in-flight request",
			zap.Stringer("key", key),
			zap.Uint64("seq", cl.seq),
		)
	}
	cl.waiters++
	// The flight is registered while c.mu is held, and run clears
	// s.inflight under c.mu before returning, so a caller that sees an
	// in-flight call here always joins it rather than starting another.
	ch := c.flights.DoChan(flightKey(key, cl.seq), func() (any, error) {
		return c.run(key, cl, loader)
	})
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		e, _ := c.Get(key)
		return e, cl, ctx.Err()
	case r := <-ch:
		e, _ := r.Val.(Entry[T])
		return e, cl, r.Err
	}
}

// Invalidate marks every entry matched by match as stale and drops its
// in-flight request, so the next read refetches. Callers waiting on a
// dropped request are served by a new one. It returns the number of
// entries matched.
func (c *Cache[T]) Invalidate(match func(Key) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, s := range c.slots {
		if !match(key) {
			continue
		}
		s.Stale = true
		if s.inflight != nil {
			s.inflight.invalidated = true
		}
		c.dropLocked(key, s)
		n++
	}
	if n > 0 {
		c.logger.Debug("entries invalidated", zap.Int("count", n))
	}
	return n
}

// Cancel drops the in-flight request of key, if any. Its result will not be
// applied. It reports whether a request was dropped.
func (c *Cache[T]) Cancel(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[key]
	if !ok || s.inflight == nil {
		return false
	}
	c.dropLocked(key, s)
	return true
}

// Keys lists every key the cache holds, sorted by their string form.
func (c *Cache[T]) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]Key, 0, len(c.slots))
	for k := range c.slots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func (c *Cache[T]) slotLocked(key Key) *slot[T] {
	s, ok := c.slots[key]
	if !ok {
		s = &slot[T]{Entry: Entry[T]{Key: key, State: Idle}}
		c.slots[key] = s
	}
	return s
}

func (c *Cache[T]) startLocked(ctx context.Context, key Key, s *slot[T]) *call {
	c.seq++
	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	cl := &call{seq: c.seq, gen: s.gen, ctx: lctx, cancel: cancel}

	s.prev = s.State
	s.State = Loading
	s.inflight = cl

	c.logger.Debug("request issued",
		zap.Stringer("key", key),
		zap.Uint64("seq", cl.seq),
	)
	return cl
}

func (c *Cache[T]) dropLocked(key Key, s *slot[T]) {
	s.gen++
	if s.inflight == nil {
		return
	}
	c.logger.Debug("in-flight request dropped",
		zap.Stringer("key", key),
		zap.Uint64("seq", s.inflight.seq),
	)
	s.inflight.cancel()
	s.inflight = nil
	s.State = s.prev
}

// run executes loader for cl and applies the outcome unless cl was
// superseded or an equal-or-newer request already completed.
func (c *Cache[T]) run(key Key, cl *call, loader Loader[T]) (any, error) {
	res, loadErr := loader(cl.ctx)
	cl.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.slots[key]
	if s.inflight == cl {
		s.inflight = nil
	}

	if cl.gen != s.gen || cl.seq <= s.applied {
		c.logger.Debug("stale completion discarded",
			zap.Stringer("key", key),
			zap.Uint64("seq", cl.seq),
			zap.Uint64("applied", s.applied),
		)
		return c.snapshotLocked(s), ErrSuperseded
	}
	s.applied = cl.seq

	if loadErr != nil {
		s.State = Error
		s.Err = loadErr
		c.logger.Warn("query failed",
			zap.Stringer("key", key),
			zap.Uint64("seq", cl.seq),
			zap.Error(loadErr),
		)
		return c.snapshotLocked(s), loadErr
	}

	s.Records = res.Records
	s.Total = res.Total
	s.FetchedAt = c.now()
	s.State = Ready
	s.Stale = false
	s.Err = nil
	return c.snapshotLocked(s), nil
}

func (c *Cache[T]) staleLocked(s *slot[T]) bool {
	if s.Stale {
		return true
	}
	return c.maxAge > 0 && !s.FetchedAt.IsZero() && c.now().Sub(s.FetchedAt) > c.maxAge
}

func (c *Cache[T]) snapshotLocked(s *slot[T]) Entry[T] {
	e := s.Entry
	e.Stale = c.staleLocked(s)
	return e
}

func flightKey(key Key, seq uint64) string {
	return key.String() + "#" + strconv.FormatUint(seq, 10)
}
