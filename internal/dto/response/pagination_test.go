package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		page       int
		limit      int
		total      int64
		wantPages  int
		wantLength int
	}{
		{"exact division", 10, 1, 10, 20, 2, 10},
		{"remainder rounds up", 10, 1, 10, 21, 3, 10},
		{"single partial page", 3, 1, 10, 3, 1, 3},
		{"empty set", 0, 1, 10, 0, 0, 0},
		{"page beyond range keeps totals", 0, 9, 10, 21, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]int, tt.count)
			resp := NewPaginatedResponse(results, tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.wantPages, resp.TotalPages)
			assert.Equal(t, tt.total, resp.TotalResults)
			assert.Equal(t, tt.page, resp.Page)
			assert.Equal(t, tt.limit, resp.Limit)
			assert.Len(t, resp.Results, tt.wantLength)
		})
	}
}

func TestNewPaginatedResponse_NilResults(t *testing.T) {
	resp := NewPaginatedResponse[int](nil, 1, 10, 0)
	assert.NotNil(t, resp.Results, "results must serialize as [], not null")
}
