package repository

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockMovieRepo(t *testing.T) (MovieRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewMovieRepository(mock, zap.NewNop()), mock
}

func validMovie() *entity.Movie {
	now := time.Now()
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          "Dune",
		YearOfRelease: 2021,
		Cover:         "c.jpg",
		Categories:    []string{"Action", "Drama"},
		OwnerID:       uuid.New(),
	}
}

func movieColumns() []string {
	return []string{"id", "name", "year_of_release", "cover", "categories",
		"deleted", "owner_id", "created_at", "updated_at"}
}

func TestMovieRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		movie := validMovie()

		mock.ExpectExec("INSERT INTO movies").
			WithArgs(movie.ID, movie.Name, movie.YearOfRelease, movie.Cover,
				movie.Categories, movie.Deleted, movie.OwnerID,
				movie.CreatedAt, movie.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), movie)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	invalid := []struct {
		name   string
		mutate func(*entity.Movie)
	}{
		{"empty name", func(m *entity.Movie) { m.Name = " " }},
		{"empty cover", func(m *entity.Movie) { m.Cover = "" }},
		{"year before 1800", func(m *entity.Movie) { m.YearOfRelease = 1799 }},
		{"no categories", func(m *entity.Movie) { m.Categories = nil }},
		{"too many categories", func(m *entity.Movie) {
			m.Categories = []string{"Action", "Drama", "Comedy", "Horror", "Crime"}
		}},
		{"unknown category", func(m *entity.Movie) { m.Categories = []string{"Kung Fu"} }},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockMovieRepo(t)
			movie := validMovie()
			tt.mutate(movie)

			err := repo.Create(context.Background(), movie)

			// Rejected before any SQL runs.
			require.ErrorIs(t, err, ErrValidation)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMovieRepository_FindByID(t *testing.T) {
	movieID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	t.Run("found, soft-deleted rows included", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)

		rows := pgxmock.NewRows(movieColumns()).
			AddRow(movieID, "Dune", 2021, "c.jpg", []string{"Action"},
				true, ownerID, now, now)
		mock.ExpectQuery("SELECT (.+) FROM movies").
			WithArgs(movieID).
			WillReturnRows(rows)

		movie, err := repo.FindByID(context.Background(), movieID)

		require.NoError(t, err)
		require.NotNil(t, movie)
		assert.Equal(t, movieID, movie.ID)
		assert.True(t, movie.Deleted)
		assert.Equal(t, ownerID, movie.OwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id returns nil without error", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM movies").
			WithArgs(movieID).
			WillReturnError(pgx.ErrNoRows)

		movie, err := repo.FindByID(context.Background(), movieID)

		require.NoError(t, err)
		assert.Nil(t, movie)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMovieRepository_Query(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()

	t.Run("category filter with pagination", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		category := "Action"

		mock.ExpectQuery("SELECT COUNT").
			WithArgs(category).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		rows := pgxmock.NewRows(movieColumns()).
			AddRow(uuid.New(), "Dune", 2021, "c.jpg", []string{"Action", "Drama"},
				false, ownerID, now, now)
		mock.ExpectQuery("SELECT (.+) FROM movies").
			WithArgs(category, 10, 0).
			WillReturnRows(rows)

		movies, total, err := repo.Query(context.Background(),
			&entity.MovieFilter{Category: &category},
			&entity.QueryOptions{Limit: 10, Page: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, movies, 1)
		assert.Equal(t, "Dune", movies[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("defaults applied for zero options", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery("SELECT (.+) FROM movies").
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(movieColumns()))

		movies, total, err := repo.Query(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, movies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown sort field is a validation error", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)

		_, _, err := repo.Query(context.Background(), nil,
			&entity.QueryOptions{SortBy: "ownerId:desc"})

		require.ErrorIs(t, err, ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad sort direction is a validation error", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)

		_, _, err := repo.Query(context.Background(), nil,
			&entity.QueryOptions{SortBy: "name:sideways"})

		require.ErrorIs(t, err, ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMovieRepository_Update(t *testing.T) {
	movieID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	t.Run("patch merges onto existing record", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		name := "Dune: Part Two"

		rows := pgxmock.NewRows(movieColumns()).
			AddRow(movieID, name, 2021, "c.jpg", []string{"Action"},
				false, ownerID, now, now)
		mock.ExpectQuery("UPDATE movies").
			WithArgs(movieID, &name, (*int)(nil), (*string)(nil), []string(nil),
				(*bool)(nil), pgxmock.AnyArg()).
			WillReturnRows(rows)

		movie, err := repo.Update(context.Background(), movieID,
			&entity.MoviePatch{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, movie.Name)
		assert.Equal(t, ownerID, movie.OwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft delete flips the flag only", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		deleted := true

		rows := pgxmock.NewRows(movieColumns()).
			AddRow(movieID, "Dune", 2021, "c.jpg", []string{"Action"},
				true, ownerID, now, now)
		mock.ExpectQuery("UPDATE movies").
			WithArgs(movieID, (*string)(nil), (*int)(nil), (*string)(nil),
				[]string(nil), &deleted, pgxmock.AnyArg()).
			WillReturnRows(rows)

		movie, err := repo.Update(context.Background(), movieID,
			&entity.MoviePatch{Deleted: &deleted})

		require.NoError(t, err)
		assert.True(t, movie.Deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id yields ErrNotFound", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		name := "whatever"

		mock.ExpectQuery("UPDATE movies").
			WithArgs(movieID, &name, (*int)(nil), (*string)(nil), []string(nil),
				(*bool)(nil), pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(context.Background(), movieID,
			&entity.MoviePatch{Name: &name})

		require.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid patch rejected before SQL", func(t *testing.T) {
		repo, mock := newMockMovieRepo(t)
		year := 1500

		_, err := repo.Update(context.Background(), movieID,
			&entity.MoviePatch{YearOfRelease: &year})

		require.ErrorIs(t, err, ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
