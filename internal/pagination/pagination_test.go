package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		expected Params
	}{
		{name: "defaults when omitted", page: 0, size: 0, expected: Params{Page: 1, Size: 5}},
		{name: "negative page clamped", page: -3, size: 10, expected: Params{Page: 1, Size: 10}},
		{name: "negative size falls back", page: 2, size: -1, expected: Params{Page: 2, Size: 5}},
		{name: "oversized page size capped", page: 1, size: 10000, expected: Params{Page: 1, Size: 100}},
		{name: "valid values kept", page: 3, size: 7, expected: Params{Page: 3, Size: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.page, tt.size))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	p := Normalize(3, 5)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 5, p.Limit())

	first := Normalize(1, 5)
	assert.Equal(t, 0, first.Offset())
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		page       int
		size       int
		totalPages int
	}{
		{name: "12 items over pages of 5", totalItems: 12, page: 1, size: 5, totalPages: 3},
		{name: "partial last page counts", totalItems: 12, page: 3, size: 5, totalPages: 3},
		{name: "out-of-range page keeps totals", totalItems: 12, page: 4, size: 5, totalPages: 3},
		{name: "empty listing has zero pages", totalItems: 0, page: 1, size: 5, totalPages: 0},
		{name: "exact fit", totalItems: 10, page: 2, size: 5, totalPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMetadata(tt.totalItems, Normalize(tt.page, tt.size))
			assert.Equal(t, tt.totalItems, meta.TotalItems)
			assert.Equal(t, tt.size, meta.PageSize)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
		})
	}
}
