package request

type PaginatedRequest struct {
	SortBy string `json:"sortBy"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Page   int    `json:"page" validate:"omitempty,min=1"`
}

func (p PaginatedRequest) NormalizedLimit() int {
	if p.Limit < 1 {
		return 10
	}
	return p.Limit
}

func (p PaginatedRequest) NormalizedPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}
