package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository stores per-profile favorite activity sets.
type Repository interface {
	ListFavorites(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	AddFavorite(ctx context.Context, profileID, activityID uuid.UUID) error
	RemoveFavorite(ctx context.Context, profileID, activityID uuid.UUID) error
	IsFavorite(ctx context.Context, profileID, activityID uuid.UUID) (bool, error)
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

func (r *PostgresRepository) ListFavorites(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	query := `
        SELECT activity_id FROM favorites
        WHERE profile_id = $1
        ORDER BY created_at
    `
	rows, err := r.pgpool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}
	return ids, nil
}

func (r *PostgresRepository) AddFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	query := `
        INSERT INTO favorites (profile_id, activity_id)
        VALUES ($1, $2)
        ON CONFLICT (profile_id, activity_id) DO NOTHING
    `
	if _, err := r.pgpool.Exec(ctx, query, profileID, activityID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE profile_id = $1 AND activity_id = $2`
	if _, err := r.pgpool.Exec(ctx, query, profileID, activityID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *PostgresRepository) IsFavorite(ctx context.Context, profileID, activityID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE profile_id = $1 AND activity_id = $2)`
	var exists bool
	if err := r.pgpool.QueryRow(ctx, query, profileID, activityID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}
