package planning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository persists the weekly planner grid.
type Repository interface {
	ListWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) ([]types.PlanningEntry, error)
	AddEntry(ctx context.Context, entry types.PlanningEntry) (*types.PlanningEntry, error)
	RemoveEntry(ctx context.Context, profileID, entryID uuid.UUID) error
	ClearWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) (int64, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool api.PGXPool
}

func NewPostgresRepository(pool api.PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pool,
	}
}

func (r *PostgresRepository) ListWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) ([]types.PlanningEntry, error) {
	query := `
        SELECT id, profile_id, week_start, day_index, time_slot,
               activity_id, title, group_label, duration, created_at
        FROM planning_entries
        WHERE profile_id = $1 AND week_start = $2
        ORDER BY day_index, time_slot, created_at
    `
	rows, err := r.pgpool.Query(ctx, query, profileID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query planning entries: %w", err)
	}
	defer rows.Close()

	var entries []types.PlanningEntry
	for rows.Next() {
		var e types.PlanningEntry
		if err := rows.Scan(
			&e.ID, &e.ProfileID, &e.WeekStart, &e.DayIndex, &e.TimeSlot,
			&e.ActivityID, &e.Title, &e.GroupLabel, &e.Duration, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan planning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planning entries: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) AddEntry(ctx context.Context, entry types.PlanningEntry) (*types.PlanningEntry, error) {
	query := `
        INSERT INTO planning_entries (
            profile_id, week_start, day_index, time_slot,
            activity_id, title, group_label, duration
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, profile_id, week_start, day_index, time_slot,
                  activity_id, title, group_label, duration, created_at
    `
	var e types.PlanningEntry
	if err := r.pgpool.QueryRow(ctx, query,
		entry.ProfileID, entry.WeekStart, entry.DayIndex, entry.TimeSlot,
		entry.ActivityID, entry.Title, entry.GroupLabel, entry.Duration,
	).Scan(
		&e.ID, &e.ProfileID, &e.WeekStart, &e.DayIndex, &e.TimeSlot,
		&e.ActivityID, &e.Title, &e.GroupLabel, &e.Duration, &e.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to insert planning entry: %w", err)
	}
	return &e, nil
}

func (r *PostgresRepository) RemoveEntry(ctx context.Context, profileID, entryID uuid.UUID) error {
	query := `DELETE FROM planning_entries WHERE id = $1 AND profile_id = $2`
	tag, err := r.pgpool.Exec(ctx, query, entryID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete planning entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("planning entry %s: %w", entryID, api.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) ClearWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) (int64, error) {
	query := `DELETE FROM planning_entries WHERE profile_id = $1 AND week_start = $2`
	tag, err := r.pgpool.Exec(ctx, query, profileID, weekStart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to clear planning week: %w", err)
	}
	return tag.RowsAffected(), nil
}
