package resource

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Query selects one page of a collection.
type Query struct {
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1"`
	Search string `json:"search"`
}

// DefaultQuery is the first page with the default page size and no search.
func DefaultQuery() Query {
	return Query{Page: DefaultPage, Limit: DefaultLimit}
}

// Normalize replaces out-of-range paging values with the defaults.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Values encodes the query the way the collection endpoints read it.
// All three parameters are always present so equal queries encode equally.
func (q Query) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("search", q.Search)
	return v
}
