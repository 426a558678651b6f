package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MinYearOfRelease is the oldest release year a record may carry.
const MinYearOfRelease = 1800

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Query(ctx context.Context, filter *entity.MovieFilter, opts *entity.QueryOptions) ([]*entity.Movie, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch *entity.MoviePatch) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// sortColumns whitelists the sortable fields and maps their request names to
// columns. Anything outside this map is rejected as a validation error.
var sortColumns = map[string]string{
	"name":          "name",
	"yearOfRelease": "year_of_release",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

func validateMovie(movie *entity.Movie) error {
	if strings.TrimSpace(movie.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(movie.Cover) == "" {
		return fmt.Errorf("%w: cover is required", ErrValidation)
	}
	if movie.YearOfRelease < MinYearOfRelease {
		return fmt.Errorf("%w: yearOfRelease must be %d or later", ErrValidation, MinYearOfRelease)
	}
	if !entity.ValidCategories(movie.Categories) {
		return fmt.Errorf("%w: categories must contain between %d and %d known categories",
			ErrValidation, entity.MinCategories, entity.MaxCategories)
	}
	return nil
}

func validatePatch(patch *entity.MoviePatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if patch.Cover != nil && strings.TrimSpace(*patch.Cover) == "" {
		return fmt.Errorf("%w: cover must not be empty", ErrValidation)
	}
	if patch.YearOfRelease != nil && *patch.YearOfRelease < MinYearOfRelease {
		return fmt.Errorf("%w: yearOfRelease must be %d or later", ErrValidation, MinYearOfRelease)
	}
	if patch.Categories != nil && !entity.ValidCategories(patch.Categories) {
		return fmt.Errorf("%w: categories must contain between %d and %d known categories",
			ErrValidation, entity.MinCategories, entity.MaxCategories)
	}
	return nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := validateMovie(movie); err != nil {
		return err
	}

	query := `
		INSERT INTO movies (id, name, year_of_release, cover, categories,
		                   deleted, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.YearOfRelease,
		movie.Cover,
		movie.Categories,
		movie.Deleted,
		movie.OwnerID,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

// FindByID returns the record regardless of its deleted flag. Soft-deleted
// movies stay readable by id.
func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, name, year_of_release, cover, categories, deleted,
		       owner_id, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.YearOfRelease,
		&movie.Cover,
		&movie.Categories,
		&movie.Deleted,
		&movie.OwnerID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

// Query returns one page of matching movies plus the total match count.
func (r *movieRepository) Query(ctx context.Context, filter *entity.MovieFilter, opts *entity.QueryOptions) ([]*entity.Movie, int64, error) {
	if filter == nil {
		filter = &entity.MovieFilter{}
	}
	if opts == nil {
		opts = &entity.QueryOptions{}
	}

	orderBy, err := parseSortBy(opts.SortBy)
	if err != nil {
		return nil, 0, err
	}

	var where strings.Builder
	args := []interface{}{}
	argCount := 1

	if !filter.IncludeDeleted {
		where.WriteString(" AND deleted = FALSE")
	}
	if filter.Name != nil && *filter.Name != "" {
		where.WriteString(fmt.Sprintf(" AND name = $%d", argCount))
		args = append(args, *filter.Name)
		argCount++
	}
	if filter.Category != nil && *filter.Category != "" {
		where.WriteString(fmt.Sprintf(" AND $%d = ANY(categories)", argCount))
		args = append(args, *filter.Category)
		argCount++
	}

	countQuery := `SELECT COUNT(*) FROM movies WHERE 1=1` + where.String()

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	limit := opts.NormalizedLimit()
	offset := opts.Offset()

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, year_of_release, cover, categories, deleted,
		       owner_id, created_at, updated_at
		FROM movies
		WHERE 1=1
	`)
	queryBuilder.WriteString(where.String())
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to query movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.YearOfRelease,
			&movie.Cover,
			&movie.Categories,
			&movie.Deleted,
			&movie.OwnerID,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, 0, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies queried",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	return movies, total, nil
}

// Update merges the patch onto the stored record and returns the result.
// id, owner_id and created_at are not part of the SET list, so a patch can
// never reassign them. Returns ErrNotFound when the id does not resolve.
func (r *movieRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.MoviePatch) (*entity.Movie, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	query := `
		UPDATE movies
		SET name = COALESCE($2, name),
		    year_of_release = COALESCE($3, year_of_release),
		    cover = COALESCE($4, cover),
		    categories = COALESCE($5::text[], categories),
		    deleted = COALESCE($6, deleted),
		    updated_at = $7
		WHERE id = $1
		RETURNING id, name, year_of_release, cover, categories, deleted,
		          owner_id, created_at, updated_at
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query,
		id,
		patch.Name,
		patch.YearOfRelease,
		patch.Cover,
		patch.Categories,
		patch.Deleted,
		time.Now(),
	).Scan(
		&movie.ID,
		&movie.Name,
		&movie.YearOfRelease,
		&movie.Cover,
		&movie.Categories,
		&movie.Deleted,
		&movie.OwnerID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("movie %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return &movie, nil
}

// parseSortBy turns "field" or "field:direction" into an ORDER BY fragment.
// The default ordering is creation time ascending.
func parseSortBy(sortBy string) (string, error) {
	if sortBy == "" {
		return "created_at ASC", nil
	}

	field := sortBy
	direction := "ASC"

	if idx := strings.IndexByte(sortBy, ':'); idx >= 0 {
		field = sortBy[:idx]
		switch strings.ToLower(sortBy[idx+1:]) {
		case "asc", "":
			direction = "ASC"
		case "desc":
			direction = "DESC"
		default:
			return "", fmt.Errorf("%w: sort direction must be asc or desc", ErrValidation)
		}
	}

	column, ok := sortColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: cannot sort by %q", ErrValidation, field)
	}

	return column + " " + direction, nil
}
