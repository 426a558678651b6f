package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// GetMovies handles GET /api/movies (admin only, gated at the route)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.MovieListRequest{
		PaginatedRequest: request.PaginatedRequest{
			SortBy: query.Get("sortBy"),
			Limit:  utils.ParseInt(query.Get("limit"), 10),
			Page:   utils.ParseInt(query.Get("page"), 1),
		},
		Name:           query.Get("name"),
		Category:       query.Get("category"),
		IncludeDeleted: query.Get("includeDeleted") == "true",
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	// Paged listings use the bare paginate contract, not the envelope.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetByID(r.Context(), actor, movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// UpdateMovie handles PATCH /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateByID(r.Context(), actor, movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if _, err := h.service.DeleteByID(r.Context(), actor, movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps the service's typed failures onto status codes.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrForbidden):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Unauthorized access")

	case errors.Is(err, repository.ErrValidation):
		h.log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// actorFromContext rebuilds the authenticated actor the auth middleware
// stored on the request.
func actorFromContext(r *http.Request) (*entity.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return nil, false
	}

	return &entity.Actor{ID: userID, Role: entity.UserRole(role)}, true
}
