package bafa

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository reads the static BAFA roadmap stages and stores per-profile
// completion state.
type Repository interface {
	GetStages(ctx context.Context) ([]types.BafaStage, error)
	GetCompletions(ctx context.Context, profileID uuid.UUID) (map[string]time.Time, error)
	SetStageCompleted(ctx context.Context, profileID uuid.UUID, stageID string, completed bool) error
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

func (r *PostgresRepository) GetStages(ctx context.Context) ([]types.BafaStage, error) {
	query := `
        SELECT id, position, title, subtitle, description, duration, average_cost
        FROM bafa_stages
        ORDER BY position
    `
	rows, err := r.pgpool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bafa stages: %w", err)
	}
	defer rows.Close()

	var stages []types.BafaStage
	for rows.Next() {
		var s types.BafaStage
		if err := rows.Scan(&s.ID, &s.Position, &s.Title, &s.Subtitle, &s.Description, &s.Duration, &s.AverageCost); err != nil {
			return nil, fmt.Errorf("failed to scan bafa stage: %w", err)
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bafa stages: %w", err)
	}
	return stages, nil
}

func (r *PostgresRepository) GetCompletions(ctx context.Context, profileID uuid.UUID) (map[string]time.Time, error) {
	query := `SELECT stage_id, completed_at FROM bafa_progress WHERE profile_id = $1`
	rows, err := r.pgpool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bafa progress: %w", err)
	}
	defer rows.Close()

	completions := make(map[string]time.Time)
	for rows.Next() {
		var stageID string
		var completedAt time.Time
		if err := rows.Scan(&stageID, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bafa progress: %w", err)
		}
		completions[stageID] = completedAt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bafa progress: %w", err)
	}
	return completions, nil
}

func (r *PostgresRepository) SetStageCompleted(ctx context.Context, profileID uuid.UUID, stageID string, completed bool) error {
	if !completed {
		query := `DELETE FROM bafa_progress WHERE profile_id = $1 AND stage_id = $2`
		if _, err := r.pgpool.Exec(ctx, query, profileID, stageID); err != nil {
			return fmt.Errorf("failed to reset bafa stage: %w", err)
		}
		return nil
	}

	// The FK on stage_id rejects unknown stages.
	var exists bool
	if err := r.pgpool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bafa_stages WHERE id = $1)`, stageID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check bafa stage: %w", err)
	}
	if !exists {
		return fmt.Errorf("bafa stage %q: %w", stageID, api.ErrNotFound)
	}

	query := `
        INSERT INTO bafa_progress (profile_id, stage_id)
        VALUES ($1, $2)
        ON CONFLICT (profile_id, stage_id) DO NOTHING
    `
	if _, err := r.pgpool.Exec(ctx, query, profileID, stageID); err != nil {
		return fmt.Errorf("failed to complete bafa stage: %w", err)
	}
	return nil
}
