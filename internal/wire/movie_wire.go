package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/movies", func(r chi.Router) {
		// Every movie route needs an authenticated caller. Ownership checks
		// on single records happen in the service; only the full listing is
		// gated by role here.
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", movieHandler.CreateMovie)

		r.With(middleware.RequirePermission(entity.PermissionAdmin, log)).
			Get("/", movieHandler.GetMovies)

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
