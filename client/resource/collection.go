package resource

import (
	"context"
	"net/http"
)

// Meta is the pagination block of a list envelope.
type Meta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
}

type envelope[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
	Meta       *Meta  `json:"meta,omitempty"`
}

// check applies the envelope's own status, which may flag a failure even
// when the transport status was 2xx.
func (e *envelope[T]) check() error {
	if e.StatusCode != 0 && !successful(e.StatusCode) {
		return &APIError{StatusCode: e.StatusCode, Message: e.Message}
	}
	return nil
}

// Page is one decoded list response.
type Page[T any] struct {
	Records    []T
	Total      int
	Meta       Meta
	StatusCode int
	Message    string
}

// Reply is one decoded single-record response.
type Reply[T any] struct {
	Record     T
	StatusCode int
	Message    string
}

// Collection is a typed view of one named collection, e.g. "sale".
type Collection[T any] struct {
	client *Client
	name   string
}

// NewCollection binds name to the client.
func NewCollection[T any](c *Client, name string) *Collection[T] {
	return &Collection[T]{client: c, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// List fetches one page. A missing meta block yields Total = len(records).
func (c *Collection[T]) List(ctx context.Context, q Query) (Page[T], error) {
	q = q.Normalize()

	var env envelope[[]T]
	err := c.client.do(ctx, request{
		method: http.MethodGet,
		url:    c.client.endpoint(c.name),
		query:  q.Values(),
	}, &env)
	if err != nil {
		return Page[T]{}, err
	}
	if err := env.check(); err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{
		Records:    env.Data,
		Total:      len(env.Data),
		StatusCode: env.StatusCode,
		Message:    env.Message,
	}
	if env.Meta != nil {
		page.Meta = *env.Meta
		page.Total = env.Meta.Total
	}
	return page, nil
}

// Get fetches the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (Reply[T], error) {
	return c.single(ctx, request{
		method: http.MethodGet,
		url:    c.client.endpoint(c.name, id),
	})
}

// Create posts payload with a fresh idempotency key.
func (c *Collection[T]) Create(ctx context.Context, payload any) (Reply[T], error) {
	header := http.Header{}
	header.Set(IdempotencyHeader, c.client.newKey())
	return c.single(ctx, request{
		method: http.MethodPost,
		url:    c.client.endpoint(c.name),
		body:   payload,
		header: header,
	})
}

// Update patches the record with the given id.
func (c *Collection[T]) Update(ctx context.Context, id string, payload any) (Reply[T], error) {
	return c.single(ctx, request{
		method: http.MethodPatch,
		url:    c.client.endpoint(c.name, id),
		body:   payload,
	})
}

// Remove deletes the record with the given id. The reply carries the
// deleted record when the server returns it.
func (c *Collection[T]) Remove(ctx context.Context, id string) (Reply[T], error) {
	return c.single(ctx, request{
		method: http.MethodDelete,
		url:    c.client.endpoint(c.name, id),
	})
}

func (c *Collection[T]) single(ctx context.Context, req request) (Reply[T], error) {
	var env envelope[T]
	if err := c.client.do(ctx, req, &env); err != nil {
		return Reply[T]{}, err
	}
	if err := env.check(); err != nil {
		return Reply[T]{}, err
	}
	return Reply[T]{
		Record:     env.Data,
		StatusCode: env.StatusCode,
		Message:    env.Message,
	}, nil
}
