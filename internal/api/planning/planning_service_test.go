package planning

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) ([]types.PlanningEntry, error) {
	args := m.Called(ctx, profileID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PlanningEntry), args.Error(1)
}

func (m *MockRepository) AddEntry(ctx context.Context, entry types.PlanningEntry) (*types.PlanningEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlanningEntry), args.Error(1)
}

func (m *MockRepository) RemoveEntry(ctx context.Context, profileID, entryID uuid.UUID) error {
	args := m.Called(ctx, profileID, entryID)
	return args.Error(0)
}

func (m *MockRepository) ClearWeek(ctx context.Context, profileID uuid.UUID, weekStart time.Time) (int64, error) {
	args := m.Called(ctx, profileID, weekStart)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatsTracker struct {
	mock.Mock
}

func (m *MockStatsTracker) Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error {
	args := m.Called(ctx, profileID, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestParseWeekStart(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"monday stays put", "2026-03-02", "2026-03-02"},
		{"wednesday rolls back to monday", "2026-03-04", "2026-03-02"},
		{"sunday belongs to the preceding monday", "2026-03-08", "2026-03-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeekStart(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}

	t.Run("bad format", func(t *testing.T) {
		_, err := parseWeekStart("02/03/2026")
		assert.ErrorIs(t, err, api.ErrBadInput)
	})
}

func TestAddEntry_Validation(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	valid := types.CreatePlanningEntryParams{
		WeekStart: "2026-03-02",
		DayIndex:  2,
		TimeSlot:  "14h00",
		Title:     "Atelier origami",
	}

	tests := []struct {
		name   string
		mutate func(*types.CreatePlanningEntryParams)
	}{
		{"bad week format", func(p *types.CreatePlanningEntryParams) { p.WeekStart = "next week" }},
		{"negative day index", func(p *types.CreatePlanningEntryParams) { p.DayIndex = -1 }},
		{"day index past friday", func(p *types.CreatePlanningEntryParams) { p.DayIndex = 5 }},
		{"unknown time slot", func(p *types.CreatePlanningEntryParams) { p.TimeSlot = "23h00" }},
		{"empty title", func(p *types.CreatePlanningEntryParams) { p.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewService(mockRepo, nil, testLogger())

			params := valid
			tt.mutate(&params)

			_, err := svc.AddEntry(ctx, profileID, params)
			assert.ErrorIs(t, err, api.ErrBadInput)
			mockRepo.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything)
		})
	}
}

func TestAddEntry_NormalizesWeekAndTracksStat(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	stored := &types.PlanningEntry{
		ID:        uuid.New(),
		ProfileID: profileID,
		WeekStart: monday,
		DayIndex:  2,
		TimeSlot:  "14h00",
		Title:     "Atelier origami",
	}

	mockRepo := new(MockRepository)
	mockRepo.On("AddEntry", ctx, mock.MatchedBy(func(e types.PlanningEntry) bool {
		return e.WeekStart.Equal(monday) && e.Title == "Atelier origami"
	})).Return(stored, nil).Once()

	tracker := new(MockStatsTracker)
	tracker.On("Track", ctx, profileID, types.StatPlanningCreated).Return(nil).Once()

	svc := NewService(mockRepo, tracker, testLogger())

	// 2026-03-04 is a Wednesday; the stored entry lands on that week's Monday.
	entry, err := svc.AddEntry(ctx, profileID, types.CreatePlanningEntryParams{
		WeekStart: "2026-03-04",
		DayIndex:  2,
		TimeSlot:  "14h00",
		Title:     "Atelier origami",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, entry.ID)
	mockRepo.AssertExpectations(t)
	tracker.AssertExpectations(t)
}

func TestAddEntry_TrackerFailureDoesNotFailTheAdd(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("AddEntry", ctx, mock.Anything).Return(&types.PlanningEntry{ID: uuid.New()}, nil).Once()

	tracker := new(MockStatsTracker)
	tracker.On("Track", ctx, profileID, types.StatPlanningCreated).Return(errors.New("stats unavailable")).Once()

	svc := NewService(mockRepo, tracker, testLogger())

	_, err := svc.AddEntry(ctx, profileID, types.CreatePlanningEntryParams{
		WeekStart: "2026-03-02",
		DayIndex:  0,
		TimeSlot:  "9h00",
		Title:     "Relais des animaux",
	})
	assert.NoError(t, err)
}

func TestClearWeek(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockRepository)
	mockRepo.On("ClearWeek", ctx, profileID, monday).Return(int64(4), nil).Once()

	svc := NewService(mockRepo, nil, testLogger())

	removed, err := svc.ClearWeek(ctx, profileID, "2026-03-06")
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	mockRepo.AssertExpectations(t)
}
