package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryNormalize(t *testing.T) {
	testCases := []struct {
		name           string
		query          PageQuery
		expected       PageQuery
		expectedOffset int
	}{
		{name: "defaults", query: PageQuery{}, expected: PageQuery{Page: 1, Limit: 10}},
		{name: "capped_limit", query: PageQuery{Page: 3, Limit: 500}, expected: PageQuery{Page: 3, Limit: 100}, expectedOffset: 200},
		{name: "keeps_search", query: PageQuery{Page: 2, Limit: 10, Search: "rice"}, expected: PageQuery{Page: 2, Limit: 10, Search: "rice"}, expectedOffset: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.query.Normalize()
			assert.Equal(t, tc.expected, q)
			assert.Equal(t, tc.expectedOffset, q.Offset())
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{Page: 1, Limit: 10, Total: 25, TotalPage: 3}, NewMeta(PageQuery{Page: 1, Limit: 10}, 25))
	assert.Equal(t, Meta{Page: 1, Limit: 10, Total: 20, TotalPage: 2}, NewMeta(PageQuery{Page: 1, Limit: 10}, 20))
	assert.Equal(t, Meta{Page: 1, Limit: 10}, NewMeta(PageQuery{Page: 1, Limit: 10}, 0))
}
