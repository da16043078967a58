package bafa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// StatsTracker reports roadmap actions to the gamification layer.
type StatsTracker interface {
	Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error
}

type Service interface {
	Stages(ctx context.Context) ([]types.BafaStage, error)
	Progress(ctx context.Context, profileID uuid.UUID) (*types.BafaProgress, error)
	ToggleStage(ctx context.Context, profileID uuid.UUID, params types.ToggleBafaStageParams) (*types.BafaProgress, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	stats  StatsTracker
}

func NewService(repo Repository, stats StatsTracker, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		stats:  stats,
	}
}

func (s *ServiceImpl) Stages(ctx context.Context) ([]types.BafaStage, error) {
	stages, err := s.repo.GetStages(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch bafa stages", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching bafa stages: %w", err)
	}
	return stages, nil
}

// Progress combines the static roadmap with the profile's completion marks
// and derives the done/total/percent summary.
func (s *ServiceImpl) Progress(ctx context.Context, profileID uuid.UUID) (*types.BafaProgress, error) {
	l := s.logger.With(slog.String("method", "Progress"), slog.String("profileID", profileID.String()))

	stages, err := s.repo.GetStages(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch bafa stages", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching bafa stages: %w", err)
	}
	completions, err := s.repo.GetCompletions(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch bafa progress", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching bafa progress: %w", err)
	}

	progress := &types.BafaProgress{Total: len(stages)}
	for _, stage := range stages {
		sp := types.BafaStageProgress{BafaStage: stage}
		if at, ok := completions[stage.ID]; ok {
			completedAt := at
			sp.Completed = true
			sp.CompletedAt = &completedAt
			progress.Done++
		}
		progress.Stages = append(progress.Stages, sp)
	}
	if progress.Total > 0 {
		progress.Percent = progress.Done * 100 / progress.Total
	}
	return progress, nil
}

func (s *ServiceImpl) ToggleStage(ctx context.Context, profileID uuid.UUID, params types.ToggleBafaStageParams) (*types.BafaProgress, error) {
	l := s.logger.With(slog.String("method", "ToggleStage"),
		slog.String("profileID", profileID.String()), slog.String("stageID", params.StageID))

	if err := s.repo.SetStageCompleted(ctx, profileID, params.StageID, params.Completed); err != nil {
		l.ErrorContext(ctx, "Failed to toggle bafa stage", slog.Any("error", err))
		return nil, fmt.Errorf("error toggling bafa stage: %w", err)
	}

	if params.Completed && s.stats != nil {
		if err := s.stats.Track(ctx, profileID, types.StatBafaStarted); err != nil {
			l.WarnContext(ctx, "Failed to track bafa stat", slog.Any("error", err))
		}
	}

	return s.Progress(ctx, profileID)
}
