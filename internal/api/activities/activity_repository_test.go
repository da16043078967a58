package activities

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

func repoLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

var activityRowColumns = []string{
	"id", "slug", "title", "description", "category",
	"age_min", "age_max", "duration_minutes", "energy_level",
	"environment", "weather_tags", "group_type", "materials",
}

func TestGetAllActivities(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	id := uuid.New()
	mockPool.ExpectQuery(`FROM activities ORDER BY slug`).
		WillReturnRows(pgxmock.NewRows(activityRowColumns).
			AddRow(id, "atelier-origami", "Atelier origami", "Pliage de papier", "manuelles",
				6, 12, 45, "calme", "interieur", []string{"pluie", "toutes"}, "petit", []string{"papier"}))

	repo := NewPostgresRepository(mockPool, repoLogger())

	activities, err := repo.GetAllActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)

	a := activities[0]
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "atelier-origami", a.Slug)
	assert.Equal(t, types.AgeRange{Min: 6, Max: 12}, a.AgeRange)
	assert.Equal(t, types.EnergyCalm, a.EnergyLevel)
	assert.Equal(t, []string{"pluie", "toutes"}, a.WeatherTags)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetActivity_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	id := uuid.New()
	mockPool.ExpectQuery(`FROM activities WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	repo := NewPostgresRepository(mockPool, repoLogger())

	_, err = repo.GetActivity(context.Background(), id)
	assert.ErrorIs(t, err, api.ErrNotFound)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestGetCategories(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT id, name, color FROM categories ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "color"}).
			AddRow("manuelles", "Activités manuelles", "#F59E0B").
			AddRow("sportifs", "Jeux sportifs", "#EF4444"))

	repo := NewPostgresRepository(mockPool, repoLogger())

	categories, err := repo.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "manuelles", categories[0].ID)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}
