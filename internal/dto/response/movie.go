package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	YearOfRelease int       `json:"yearOfRelease"`
	Cover         string    `json:"cover"`
	Categories    []string  `json:"categories"`
	Deleted       bool      `json:"deleted"`
	OwnerID       string    `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID.String(),
		Name:          movie.Name,
		YearOfRelease: movie.YearOfRelease,
		Cover:         movie.Cover,
		Categories:    movie.Categories,
		Deleted:       movie.Deleted,
		OwnerID:       movie.OwnerID.String(),
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     movie.UpdatedAt,
	}
}
