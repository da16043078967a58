package planning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// StatsTracker reports planner actions to the gamification layer.
type StatsTracker interface {
	Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error
}

type Service interface {
	ListWeek(ctx context.Context, profileID uuid.UUID, weekStart string) ([]types.PlanningEntry, error)
	AddEntry(ctx context.Context, profileID uuid.UUID, params types.CreatePlanningEntryParams) (*types.PlanningEntry, error)
	RemoveEntry(ctx context.Context, profileID, entryID uuid.UUID) error
	ClearWeek(ctx context.Context, profileID uuid.UUID, weekStart string) (int64, error)
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

// parseWeekStart validates the YYYY-MM-DD week key and normalizes it to the
// Monday of that week.
func parseWeekStart(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("week_start must be YYYY-MM-DD: %w", api.ErrBadInput)
	}
	// Weekday() is 0 on Sunday; shift back to Monday.
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset), nil
}

func validSlot(slot string) bool {
	for _, s := range types.PlanningTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (s *ServiceImpl) ListWeek(ctx context.Context, profileID uuid.UUID, weekStart string) ([]types.PlanningEntry, error) {
	l := s.logger.With(slog.String("method", "ListWeek"), slog.String("profileID", profileID.String()))

	week, err := parseWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListWeek(ctx, profileID, week)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch planning week", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching planning week: %w", err)
	}
	return entries, nil
}

func (s *ServiceImpl) AddEntry(ctx context.Context, profileID uuid.UUID, params types.CreatePlanningEntryParams) (*types.PlanningEntry, error) {
	l := s.logger.With(slog.String("method", "AddEntry"), slog.String("profileID", profileID.String()))

	week, err := parseWeekStart(params.WeekStart)
	if err != nil {
		return nil, err
	}
	if params.DayIndex < 0 || params.DayIndex >= len(types.PlanningDays) {
		return nil, fmt.Errorf("day_index out of range: %w", api.ErrBadInput)
	}
	if !validSlot(params.TimeSlot) {
		return nil, fmt.Errorf("unknown time slot %q: %w", params.TimeSlot, api.ErrBadInput)
	}
	if params.Title == "" {
		return nil, fmt.Errorf("title is required: %w", api.ErrBadInput)
	}

	entry, err := s.repo.AddEntry(ctx, types.PlanningEntry{
		ProfileID:  profileID,
		WeekStart:  week,
		DayIndex:   params.DayIndex,
		TimeSlot:   params.TimeSlot,
		ActivityID: params.ActivityID,
		Title:      params.Title,
		GroupLabel: params.GroupLabel,
		Duration:   params.Duration,
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to add planning entry", slog.Any("error", err))
		return nil, fmt.Errorf("error adding planning entry: %w", err)
	}

	if s.stats != nil {
		if err := s.stats.Track(ctx, profileID, types.StatPlanningCreated); err != nil {
			l.WarnContext(ctx, "Failed to track planning stat", slog.Any("error", err))
		}
	}

	l.InfoContext(ctx, "Planning entry added", slog.String("entryID", entry.ID.String()))
	return entry, nil
}

func (s *ServiceImpl) RemoveEntry(ctx context.Context, profileID, entryID uuid.UUID) error {
	l := s.logger.With(slog.String("method", "RemoveEntry"), slog.String("profileID", profileID.String()))

	if err := s.repo.RemoveEntry(ctx, profileID, entryID); err != nil {
		l.ErrorContext(ctx, "Failed to remove planning entry", slog.Any("error", err))
		return fmt.Errorf("error removing planning entry: %w", err)
	}
	return nil
}

func (s *ServiceImpl) ClearWeek(ctx context.Context, profileID uuid.UUID, weekStart string) (int64, error) {
	l := s.logger.With(slog.String("method", "ClearWeek"), slog.String("profileID", profileID.String()))

	week, err := parseWeekStart(weekStart)
	if err != nil {
		return 0, err
	}

	removed, err := s.repo.ClearWeek(ctx, profileID, week)
	if err != nil {
		l.ErrorContext(ctx, "Failed to clear planning week", slog.Any("error", err))
		return 0, fmt.Errorf("error clearing planning week: %w", err)
	}

	l.InfoContext(ctx, "Planning week cleared", slog.Int64("removed", removed))
	return removed, nil
}
