package badges

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service is the gamification layer: stat tracking and badge awards. Track
// also satisfies the StatsTracker interfaces the other features declare.
type Service interface {
	Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error
	Badges(ctx context.Context, profileID uuid.UUID) ([]types.BadgeStatus, error)
	Stats(ctx context.Context, profileID uuid.UUID) (*types.ProfileStats, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// Track bumps the counter for one event and awards every badge whose
// condition the new stats satisfy. Awarding is idempotent.
func (s *ServiceImpl) Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error {
	l := s.logger.With(slog.String("method", "Track"),
		slog.String("profileID", profileID.String()), slog.String("event", string(event)))

	stats, err := s.repo.IncrementStat(ctx, profileID, event)
	if err != nil {
		l.ErrorContext(ctx, "Failed to increment stat", slog.Any("error", err))
		return fmt.Errorf("error incrementing stat: %w", err)
	}

	earnedAt, err := s.repo.GetEarnedBadges(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch earned badges", slog.Any("error", err))
		return fmt.Errorf("error fetching earned badges: %w", err)
	}
	earned := make(map[string]bool, len(earnedAt))
	for id := range earnedAt {
		earned[id] = true
	}

	for _, badgeID := range newlyEarned(*stats, earned) {
		if err := s.repo.AwardBadge(ctx, profileID, badgeID); err != nil {
			l.ErrorContext(ctx, "Failed to award badge", slog.String("badgeID", badgeID), slog.Any("error", err))
			return fmt.Errorf("error awarding badge: %w", err)
		}
		l.InfoContext(ctx, "Badge awarded", slog.String("badgeID", badgeID))
	}
	return nil
}

// Badges lists every badge with the profile's earned state, in rule order.
func (s *ServiceImpl) Badges(ctx context.Context, profileID uuid.UUID) ([]types.BadgeStatus, error) {
	l := s.logger.With(slog.String("method", "Badges"), slog.String("profileID", profileID.String()))

	earnedAt, err := s.repo.GetEarnedBadges(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch earned badges", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching earned badges: %w", err)
	}

	var result []types.BadgeStatus
	for _, rule := range badgeRules {
		status := types.BadgeStatus{Badge: rule.Badge}
		if at, ok := earnedAt[rule.ID]; ok {
			t := at
			status.Earned = true
			status.EarnedAt = &t
		}
		result = append(result, status)
	}
	return result, nil
}

func (s *ServiceImpl) Stats(ctx context.Context, profileID uuid.UUID) (*types.ProfileStats, error) {
	stats, err := s.repo.GetStats(ctx, profileID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch stats", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching stats: %w", err)
	}
	return stats, nil
}
