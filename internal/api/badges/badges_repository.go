package badges

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

// Repository stores per-profile stat counters and earned badges.
type Repository interface {
	GetStats(ctx context.Context, profileID uuid.UUID) (*types.ProfileStats, error)
	IncrementStat(ctx context.Context, profileID uuid.UUID, event types.StatEvent) (*types.ProfileStats, error)
	GetEarnedBadges(ctx context.Context, profileID uuid.UUID) (map[string]time.Time, error)
	AwardBadge(ctx context.Context, profileID uuid.UUID, badgeID string) error
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

const statsColumns = `searches_done, activities_viewed, planning_created, bafa_started, days_visited`

func (r *PostgresRepository) GetStats(ctx context.Context, profileID uuid.UUID) (*types.ProfileStats, error) {
	// Missing rows read as zero stats; the row is created on first increment.
	query := fmt.Sprintf(`
        SELECT %s FROM profile_stats WHERE profile_id = $1
    `, statsColumns)

	var s types.ProfileStats
	err := r.pgpool.QueryRow(ctx, query, profileID).Scan(
		&s.SearchesDone, &s.ActivitiesViewed, &s.PlanningCreated, &s.BafaStarted, &s.DaysVisited,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &types.ProfileStats{}, nil
		}
		return nil, fmt.Errorf("failed to fetch profile stats: %w", err)
	}
	return &s, nil
}

// statColumn maps an event to the counter it bumps. days_visited is special
// cased: it only advances once per calendar day.
func statColumn(event types.StatEvent) (string, bool) {
	switch event {
	case types.StatSearchDone:
		return "searches_done", true
	case types.StatActivityViewed:
		return "activities_viewed", true
	case types.StatPlanningCreated:
		return "planning_created", true
	default:
		return "", false
	}
}

func (r *PostgresRepository) IncrementStat(ctx context.Context, profileID uuid.UUID, event types.StatEvent) (*types.ProfileStats, error) {
	var query string
	switch event {
	case types.StatBafaStarted:
		query = `
            INSERT INTO profile_stats (profile_id, bafa_started)
            VALUES ($1, TRUE)
            ON CONFLICT (profile_id) DO UPDATE SET bafa_started = TRUE
            RETURNING ` + statsColumns
	case types.StatDayVisited:
		query = `
            INSERT INTO profile_stats (profile_id, days_visited, last_visit_date)
            VALUES ($1, 1, current_date)
            ON CONFLICT (profile_id) DO UPDATE SET
                days_visited = profile_stats.days_visited +
                    CASE WHEN profile_stats.last_visit_date IS DISTINCT FROM current_date THEN 1 ELSE 0 END,
                last_visit_date = current_date
            RETURNING ` + statsColumns
	default:
		column, ok := statColumn(event)
		if !ok {
			return nil, fmt.Errorf("unknown stat event %q: %w", event, api.ErrBadInput)
		}
		query = fmt.Sprintf(`
            INSERT INTO profile_stats (profile_id, %[1]s)
            VALUES ($1, 1)
            ON CONFLICT (profile_id) DO UPDATE SET %[1]s = profile_stats.%[1]s + 1
            RETURNING %[2]s`, column, statsColumns)
	}

	var s types.ProfileStats
	if err := r.pgpool.QueryRow(ctx, query, profileID).Scan(
		&s.SearchesDone, &s.ActivitiesViewed, &s.PlanningCreated, &s.BafaStarted, &s.DaysVisited,
	); err != nil {
		return nil, fmt.Errorf("failed to increment stat %s: %w", event, err)
	}
	return &s, nil
}

func (r *PostgresRepository) GetEarnedBadges(ctx context.Context, profileID uuid.UUID) (map[string]time.Time, error) {
	query := `SELECT badge_id, earned_at FROM earned_badges WHERE profile_id = $1`
	rows, err := r.pgpool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query earned badges: %w", err)
	}
	defer rows.Close()

	earned := make(map[string]time.Time)
	for rows.Next() {
		var badgeID string
		var earnedAt time.Time
		if err := rows.Scan(&badgeID, &earnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan earned badge: %w", err)
		}
		earned[badgeID] = earnedAt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating earned badges: %w", err)
	}
	return earned, nil
}

func (r *PostgresRepository) AwardBadge(ctx context.Context, profileID uuid.UUID, badgeID string) error {
	query := `
        INSERT INTO earned_badges (profile_id, badge_id)
        VALUES ($1, $2)
        ON CONFLICT (profile_id, badge_id) DO NOTHING
    `
	if _, err := r.pgpool.Exec(ctx, query, profileID, badgeID); err != nil {
		return fmt.Errorf("failed to award badge %s: %w", badgeID, err)
	}
	return nil
}
