package response

import (
	"movie-catalog/pkg/utils"
)

// PaginatedResponse mirrors the paged listing wire contract: one page of
// results plus enough metadata to walk the full set.
type PaginatedResponse[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

func NewPaginatedResponse[T any](results []T, page, limit int, total int64) *PaginatedResponse[T] {
	totalPages := utils.CalculateTotalPages(total, limit)

	if results == nil {
		results = []T{}
	}

	return &PaginatedResponse[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}
