package activities

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository reads the activity catalog. The catalog is reference data: the
// service only ever reads it, writes happen through migrations.
type Repository interface {
	GetAllActivities(ctx context.Context) ([]types.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*types.Activity, error)
	GetCategories(ctx context.Context) ([]types.Category, error)
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

const activityColumns = `
    id, slug, title, description, category,
    age_min, age_max, duration_minutes, energy_level,
    environment, weather_tags, group_type, materials
`

func scanActivity(row pgx.Row) (*types.Activity, error) {
	var a types.Activity
	if err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Description, &a.Category,
		&a.AgeRange.Min, &a.AgeRange.Max, &a.DurationMinutes, &a.EnergyLevel,
		&a.Environment, &a.WeatherTags, &a.GroupType, &a.Materials,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) GetAllActivities(ctx context.Context) ([]types.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities ORDER BY slug`, activityColumns)

	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []types.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

func (r *PostgresRepository) GetActivity(ctx context.Context, id uuid.UUID) (*types.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = $1`, activityColumns)

	a, err := scanActivity(r.pgpool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("activity %s: %w", id, api.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetCategories(ctx context.Context) ([]types.Category, error) {
	rows, err := r.pgpool.Query(ctx, `SELECT id, name, color FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []types.Category
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}
