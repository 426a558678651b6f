package request

type MovieRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	YearOfRelease int      `json:"yearOfRelease" validate:"required,min=1800"`
	Cover         string   `json:"cover" validate:"required"`
	Categories    []string `json:"categories" validate:"required,min=1,max=4"`
}

// MovieUpdateRequest is the explicit partial-update shape. Only these fields
// are mutable; id, owner and timestamps have no counterpart here.
type MovieUpdateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	YearOfRelease *int     `json:"yearOfRelease,omitempty" validate:"omitempty,min=1800"`
	Cover         *string  `json:"cover,omitempty" validate:"omitempty,min=1"`
	Categories    []string `json:"categories,omitempty" validate:"omitempty,min=1,max=4"`
}

// MovieListRequest carries the listing filter plus pagination options.
type MovieListRequest struct {
	PaginatedRequest
	Name           string
	Category       string
	IncludeDeleted bool
}
