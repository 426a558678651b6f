package entity

import (
	"github.com/google/uuid"

	"movie-catalog/pkg/utils"
)

type Movie struct {
	Base
	Name          string    `db:"name"`
	YearOfRelease int       `db:"year_of_release"`
	Cover         string    `db:"cover"`
	Categories    []string  `db:"categories"`
	Deleted       bool      `db:"deleted"`
	OwnerID       uuid.UUID `db:"owner_id"`
}

// MoviePatch lists the fields an update may overwrite. A nil field is left
// untouched. ID, owner and created_at have no patch counterpart.
type MoviePatch struct {
	Name          *string
	YearOfRelease *int
	Cover         *string
	Categories    []string
	Deleted       *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p *MoviePatch) IsEmpty() bool {
	return p.Name == nil && p.YearOfRelease == nil && p.Cover == nil &&
		p.Categories == nil && p.Deleted == nil
}

// MovieFilter narrows a movie query. Name matches exactly, Category matches
// any record whose categories contain the value.
type MovieFilter struct {
	Name           *string
	Category       *string
	IncludeDeleted bool
}

const (
	DefaultPageLimit = 10
	DefaultPage      = 1
)

// QueryOptions controls sorting and pagination. SortBy uses the
// "field" or "field:asc|desc" form.
type QueryOptions struct {
	SortBy string
	Limit  int
	Page   int
}

func (o *QueryOptions) NormalizedLimit() int {
	if o.Limit < 1 {
		return DefaultPageLimit
	}
	return o.Limit
}

func (o *QueryOptions) NormalizedPage() int {
	if o.Page < 1 {
		return DefaultPage
	}
	return o.Page
}

func (o *QueryOptions) Offset() int {
	return utils.CalculateOffset(o.NormalizedPage(), o.NormalizedLimit())
}
