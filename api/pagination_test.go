package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 20},
		{"?page=3&limit=5", 3, 5},
		{"?page=0&limit=0", 1, 20},
		{"?page=-2&limit=-1", 1, 20},
		{"?page=abc&limit=xyz", 1, 20},
		{"?page=1&limit=100", 1, 100},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/public/skills"+tt.query, nil)
		page, limit := parsePagination(req)
		assert.Equal(t, tt.wantPage, page, tt.query)
		assert.Equal(t, tt.wantLimit, limit, tt.query)
	}
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total     int64
		limit     int
		wantPages int64
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 10, 5},
	}

	for _, tt := range tests {
		p := newPagination(1, tt.limit, tt.total)
		assert.Equal(t, tt.wantPages, p.Pages)
		assert.Equal(t, tt.total, p.Total)
	}
}
