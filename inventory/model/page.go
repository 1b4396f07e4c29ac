package model

const (
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps Offset within the int32 range of the row_offset argument.
	MaxPage = 1_000_000
)

// PageQuery selects one page of a collection. Search is matched
// case-insensitively against the collection's name columns.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize applies the default page and limit and caps the limit.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Meta is the pagination block of list responses.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

func NewMeta(q PageQuery, total int64) Meta {
	pages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		pages++
	}
	return Meta{Page: q.Page, Limit: q.Limit, Total: total, TotalPage: pages}
}
