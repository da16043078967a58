package favorites

import (
	"context"
	"log/slog"
	"os"
	"testing"

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

func (m *MockRepository) ListFavorites(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockRepository) AddFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	args := m.Called(ctx, profileID, activityID)
	return args.Error(0)
}

func (m *MockRepository) RemoveFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	args := m.Called(ctx, profileID, activityID)
	return args.Error(0)
}

func (m *MockRepository) IsFavorite(ctx context.Context, profileID, activityID uuid.UUID) (bool, error) {
	args := m.Called(ctx, profileID, activityID)
	return args.Bool(0), args.Error(1)
}

type stubCatalog struct {
	activities []types.Activity
}

func (s *stubCatalog) Catalog(_ context.Context) []types.Activity {
	return s.activities
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestListFavorites_ResolvesAgainstCatalog(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	origami := types.Activity{ID: uuid.New(), Slug: "atelier-origami", Title: "Atelier origami"}
	memory := types.Activity{ID: uuid.New(), Slug: "tournoi-de-memory", Title: "Tournoi de memory"}
	staleID := uuid.New()

	mockRepo := new(MockRepository)
	// The stale ID points at an activity that left the catalog; it must be
	// skipped, not surfaced as an error.
	mockRepo.On("ListFavorites", ctx, profileID).
		Return([]uuid.UUID{memory.ID, staleID, origami.ID}, nil).Once()

	svc := NewService(mockRepo, &stubCatalog{activities: []types.Activity{origami, memory}}, testLogger())

	favorites, err := svc.ListFavorites(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "tournoi-de-memory", favorites[0].Slug)
	assert.Equal(t, "atelier-origami", favorites[1].Slug)
	mockRepo.AssertExpectations(t)
}

func TestListFavorites_EmptyList(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("ListFavorites", ctx, profileID).Return([]uuid.UUID{}, nil).Once()

	svc := NewService(mockRepo, &stubCatalog{}, testLogger())

	favorites, err := svc.ListFavorites(ctx, profileID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestAddFavorite_PropagatesRepoError(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	activityID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("AddFavorite", ctx, profileID, activityID).Return(api.ErrNotFound).Once()

	svc := NewService(mockRepo, &stubCatalog{}, testLogger())

	err := svc.AddFavorite(ctx, profileID, activityID)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	activityID := uuid.New()

	mockRepo := new(MockRepository)
	mockRepo.On("RemoveFavorite", ctx, profileID, activityID).Return(nil).Once()

	svc := NewService(mockRepo, &stubCatalog{}, testLogger())

	assert.NoError(t, svc.RemoveFavorite(ctx, profileID, activityID))
	mockRepo.AssertExpectations(t)
}
