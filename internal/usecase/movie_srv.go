package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	Create(ctx context.Context, actor *entity.Actor, req *request.MovieRequest) (*response.MovieResponse, error)
	List(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetByID(ctx context.Context, actor *entity.Actor, movieID string) (*response.MovieResponse, error)
	UpdateByID(ctx context.Context, actor *entity.Actor, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteByID(ctx context.Context, actor *entity.Actor, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// Create stores a new movie owned by the requesting actor. Creation needs no
// policy check, a record is always created self-owned.
func (s *movieService) Create(ctx context.Context, actor *entity.Actor, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		YearOfRelease: req.YearOfRelease,
		Cover:         req.Cover,
		Categories:    req.Categories,
		Deleted:       false,
		OwnerID:       actor.ID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("name", movie.Name),
		zap.String("owner_id", movie.OwnerID.String()),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// List delegates straight to the store. Restricting this operation to admin
// actors is the route's job, not this method's; it performs no per-record
// ownership filtering.
func (s *movieService) List(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List movies validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := &entity.MovieFilter{
		IncludeDeleted: req.IncludeDeleted,
	}
	if req.Name != "" {
		filter.Name = &req.Name
	}
	if req.Category != "" {
		filter.Category = &req.Category
	}

	opts := &entity.QueryOptions{
		SortBy: req.SortBy,
		Limit:  req.NormalizedLimit(),
		Page:   req.NormalizedPage(),
	}

	movies, total, err := s.repo.Movie.Query(ctx, filter, opts)
	if err != nil {
		s.log.Error("Failed to query movies",
			zap.Error(err),
			zap.Int("page", opts.Page),
			zap.Int("limit", opts.Limit),
		)
		return nil, fmt.Errorf("query movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", opts.Page),
		zap.Int("limit", opts.Limit),
	)

	return response.NewPaginatedResponse(movieResponses, opts.Page, opts.Limit, total), nil
}

// GetByID returns the movie when the actor owns it or is an admin.
// Soft-deleted records stay readable by id.
func (s *movieService) GetByID(ctx context.Context, actor *entity.Actor, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findAuthorized(ctx, actor, movieID)
	if err != nil {
		return nil, err
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// UpdateByID applies the patch after the fetch-then-authorize pipeline. The
// policy always runs against the record's current owner, before the patch.
func (s *movieService) UpdateByID(ctx context.Context, actor *entity.Actor, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.FormatValidationErrors(errs))
	}

	patch := &entity.MoviePatch{
		Name:          req.Name,
		YearOfRelease: req.YearOfRelease,
		Cover:         req.Cover,
		Categories:    req.Categories,
	}
	if patch.IsEmpty() {
		s.log.Warn("Update movie with empty body", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("%w: at least one field is required", repository.ErrValidation)
	}

	movie, err := s.findAuthorized(ctx, actor, movieID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Movie.Update(ctx, movie.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("actor_id", actor.ID.String()),
	)

	movieResp := response.MovieToResponse(updated)
	return &movieResp, nil
}

// DeleteByID soft-deletes: same pipeline as update, with a patch that only
// flips the deleted flag. The row stays in the store and keeps resolving by
// id afterwards.
func (s *movieService) DeleteByID(ctx context.Context, actor *entity.Actor, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findAuthorized(ctx, actor, movieID)
	if err != nil {
		return nil, err
	}

	deleted := true
	updated, err := s.repo.Movie.Update(ctx, movie.ID, &entity.MoviePatch{Deleted: &deleted})
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie soft deleted",
		zap.String("movie_id", movieID),
		zap.String("actor_id", actor.ID.String()),
	)

	movieResp := response.MovieToResponse(updated)
	return &movieResp, nil
}

// findAuthorized is the shared head of every single-record operation:
// resolve the id, confirm the record exists, then check the policy. The
// order is deliberate and fixed. An absent record reads as not-found even
// for an actor who would have been denied, because authorization is only
// evaluated once existence is confirmed.
func (s *movieService) findAuthorized(ctx context.Context, actor *entity.Actor, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: invalid movie id", repository.ErrValidation)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	if !CanAccess(actor, movie.OwnerID) {
		s.log.Warn("Access denied",
			zap.String("movie_id", movieID),
			zap.String("actor_id", actor.ID.String()),
			zap.String("owner_id", movie.OwnerID.String()),
		)
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrForbidden)
	}

	return movie, nil
}
