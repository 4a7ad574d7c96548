package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/items", 10, 0},
		{"explicit values", "/items?limit=25&offset=50", 25, 50},
		{"limit capped", "/items?limit=500", 100, 0},
		{"zero limit falls back", "/items?limit=0", 10, 0},
		{"negative offset ignored", "/items?offset=-5", 10, 0},
		{"garbage ignored", "/items?limit=abc&offset=xyz", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			limit, offset := Pagination(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
