package bafa

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nasserlabs/anim-tools/internal/types"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetStages(ctx context.Context) ([]types.BafaStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.BafaStage), args.Error(1)
}

func (m *MockRepository) GetCompletions(ctx context.Context, profileID uuid.UUID) (map[string]time.Time, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func (m *MockRepository) SetStageCompleted(ctx context.Context, profileID uuid.UUID, stageID string, completed bool) error {
	args := m.Called(ctx, profileID, stageID, completed)
	return args.Error(0)
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

func testStages() []types.BafaStage {
	return []types.BafaStage{
		{ID: "inscription", Position: 1, Title: "Inscription"},
		{ID: "formation_generale", Position: 2, Title: "Formation générale"},
		{ID: "stage_pratique", Position: 3, Title: "Stage pratique"},
		{ID: "approfondissement", Position: 4, Title: "Approfondissement"},
		{ID: "jury", Position: 5, Title: "Jury"},
	}
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	completedAt := time.Date(2026, time.February, 10, 18, 0, 0, 0, time.UTC)

	mockRepo := new(MockRepository)
	mockRepo.On("GetStages", ctx).Return(testStages(), nil).Once()
	mockRepo.On("GetCompletions", ctx, profileID).Return(map[string]time.Time{
		"inscription":        completedAt,
		"formation_generale": completedAt,
	}, nil).Once()

	svc := NewService(mockRepo, nil, testLogger())

	progress, err := svc.Progress(ctx, profileID)
	require.NoError(t, err)

	assert.Equal(t, 2, progress.Done)
	assert.Equal(t, 5, progress.Total)
	assert.Equal(t, 40, progress.Percent)
	require.Len(t, progress.Stages, 5)

	// Stages keep the roadmap order regardless of completion.
	assert.Equal(t, "inscription", progress.Stages[0].ID)
	assert.True(t, progress.Stages[0].Completed)
	require.NotNil(t, progress.Stages[0].CompletedAt)
	assert.Equal(t, completedAt, *progress.Stages[0].CompletedAt)

	assert.Equal(t, "stage_pratique", progress.Stages[2].ID)
	assert.False(t, progress.Stages[2].Completed)
	assert.Nil(t, progress.Stages[2].CompletedAt)
}

func TestProgress_NothingCompleted(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("GetStages", ctx).Return(testStages(), nil).Once()
	mockRepo.On("GetCompletions", ctx, profileID).Return(map[string]time.Time{}, nil).Once()

	svc := NewService(mockRepo, nil, testLogger())

	progress, err := svc.Progress(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Done)
	assert.Equal(t, 0, progress.Percent)
}

func TestToggleStage_CompletingTracksStat(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("SetStageCompleted", ctx, profileID, "stage_pratique", true).Return(nil).Once()
	mockRepo.On("GetStages", ctx).Return(testStages(), nil).Once()
	mockRepo.On("GetCompletions", ctx, profileID).Return(map[string]time.Time{
		"stage_pratique": time.Now(),
	}, nil).Once()

	tracker := new(MockStatsTracker)
	tracker.On("Track", ctx, profileID, types.StatBafaStarted).Return(nil).Once()

	svc := NewService(mockRepo, tracker, testLogger())

	progress, err := svc.ToggleStage(ctx, profileID, types.ToggleBafaStageParams{
		StageID:   "stage_pratique",
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Done)
	mockRepo.AssertExpectations(t)
	tracker.AssertExpectations(t)
}

func TestToggleStage_UncheckingDoesNotTrack(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("SetStageCompleted", ctx, profileID, "jury", false).Return(nil).Once()
	mockRepo.On("GetStages", ctx).Return(testStages(), nil).Once()
	mockRepo.On("GetCompletions", ctx, profileID).Return(map[string]time.Time{}, nil).Once()

	tracker := new(MockStatsTracker)

	svc := NewService(mockRepo, tracker, testLogger())

	_, err := svc.ToggleStage(ctx, profileID, types.ToggleBafaStageParams{
		StageID:   "jury",
		Completed: false,
	})
	require.NoError(t, err)
	tracker.AssertNotCalled(t, "Track", mock.Anything, mock.Anything, mock.Anything)
}
