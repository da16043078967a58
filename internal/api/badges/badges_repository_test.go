package badges

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

var statsRowColumns = []string{
	"searches_done", "activities_viewed", "planning_created", "bafa_started", "days_visited",
}

func TestGetStats_NoRowIsZeroStats(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	profileID := uuid.New()
	mockPool.ExpectQuery(`SELECT (.+) FROM profile_stats`).
		WithArgs(profileID).
		WillReturnError(pgx.ErrNoRows)

	repo := NewPostgresRepository(mockPool, repoLogger())

	stats, err := repo.GetStats(context.Background(), profileID)
	require.NoError(t, err)
	assert.Equal(t, &types.ProfileStats{}, stats)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestIncrementStat_Counter(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	profileID := uuid.New()
	mockPool.ExpectQuery(`INSERT INTO profile_stats (.+) searches_done (.+)`).
		WithArgs(profileID).
		WillReturnRows(pgxmock.NewRows(statsRowColumns).AddRow(5, 0, 0, false, 0))

	repo := NewPostgresRepository(mockPool, repoLogger())

	stats, err := repo.IncrementStat(context.Background(), profileID, types.StatSearchDone)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.SearchesDone)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestIncrementStat_UnknownEvent(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresRepository(mockPool, repoLogger())

	_, err = repo.IncrementStat(context.Background(), uuid.New(), types.StatEvent("bogus"))
	assert.ErrorIs(t, err, api.ErrBadInput)
}

func TestAwardBadge(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	profileID := uuid.New()
	mockPool.ExpectExec(`INSERT INTO earned_badges`).
		WithArgs(profileID, "curieux").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPostgresRepository(mockPool, repoLogger())

	err = repo.AwardBadge(context.Background(), profileID, "curieux")
	require.NoError(t, err)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}
