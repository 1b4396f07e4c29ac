// Package mutation runs writes against a collection and invalidates the
// cached queries of that collection once the write succeeds.
package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stockroom/client/querycache"
	"stockroom/client/resource"
)

// Op is the kind of write.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// Mutation describes one write. ID is required for updates and removals;
// Payload is validated against its struct tags before anything is sent.
type Mutation struct {
	Op      Op
	ID      string
	Payload any
}

// Result is the outcome of a successful write.
type Result[T any] struct {
	Record      T
	StatusCode  int
	Message     string
	Invalidated int
}

// Target is the collection a mutation writes to.
type Target[T any] interface {
	Name() string
	Create(ctx context.Context, payload any) (resource.Reply[T], error)
	Update(ctx context.Context, id string, payload any) (resource.Reply[T], error)
	Remove(ctx context.Context, id string) (resource.Reply[T], error)
}

// Invalidator is satisfied by every querycache.Cache.
type Invalidator interface {
	Invalidate(match func(querycache.Key) bool) int
}

// Coordinator fans invalidations out to every registered cache.
type Coordinator struct {
	caches []Invalidator
	logger *zap.Logger
}

// NewCoordinator returns a coordinator over caches.
func NewCoordinator(logger *zap.Logger, caches ...Invalidator) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{caches: caches, logger: logger}
}

// Register adds a cache to invalidate on later mutations.
func (c *Coordinator) Register(cache Invalidator) {
	c.caches = append(c.caches, cache)
}

// Perform validates m, sends it to target and, on success, invalidates
// every cached query of target's collection. Failures are returned as is
// and leave the caches untouched.
func Perform[T any](ctx context.Context, c *Coordinator, target Target[T], m Mutation) (Result[T], error) {
	if err := check(m); err != nil {
		return Result[T]{}, err
	}

	var (
		reply resource.Reply[T]
		err   error
	)
	switch m.Op {
	case OpCreate:
		reply, err = target.Create(ctx, m.Payload)
	case OpUpdate:
		reply, err = target.Update(ctx, m.ID, m.Payload)
	case OpRemove:
		reply, err = target.Remove(ctx, m.ID)
	}
	if err != nil {
		c.logger.Info("mutation failed",
			zap.String("resource", target.Name()),
			zap.String("op", string(m.Op)),
			zap.String("id", m.ID),
			zap.Error(err),
		)
		return Result[T]{}, err
	}

	n := c.invalidate(target.Name())
	c.logger.Debug("mutation applied",
		zap.String("resource", target.Name()),
		zap.String("op", string(m.Op)),
		zap.String("id", m.ID),
		zap.Int("invalidated", n),
	)

	return Result[T]{
		Record:      reply.Record,
		StatusCode:  reply.StatusCode,
		Message:     reply.Message,
		Invalidated: n,
	}, nil
}

func (c *Coordinator) invalidate(name string) int {
	match := querycache.ForResource(name)
	n := 0
	for _, cache := range c.caches {
		n += cache.Invalidate(match)
	}
	return n
}

func check(m Mutation) error {
	switch m.Op {
	case OpCreate:
		if m.Payload == nil {
			return &resource.ValidationError{Field: "payload", Rule: "required", Message: "is required"}
		}
	case OpUpdate:
		if m.ID == "" {
			return &resource.ValidationError{Field: "id", Rule: "required", Message: "is required"}
		}
		if m.Payload == nil {
			return &resource.ValidationError{Field: "payload", Rule: "required", Message: "is required"}
		}
	case OpRemove:
		if m.ID == "" {
			return &resource.ValidationError{Field: "id", Rule: "required", Message: "is required"}
		}
		return nil
	default:
		return fmt.Errorf("unknown mutation op %q", m.Op)
	}
	return resource.Validate(m.Payload)
}
