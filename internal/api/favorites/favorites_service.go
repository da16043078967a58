package favorites

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// CatalogProvider resolves favorite IDs against the activity catalog.
type CatalogProvider interface {
	Catalog(ctx context.Context) []types.Activity
}

type Service interface {
	ListFavorites(ctx context.Context, profileID uuid.UUID) ([]types.Activity, error)
	AddFavorite(ctx context.Context, profileID, activityID uuid.UUID) error
	RemoveFavorite(ctx context.Context, profileID, activityID uuid.UUID) error
}

type ServiceImpl struct {
	logger  *slog.Logger
	repo    Repository
	catalog CatalogProvider
}

func NewService(repo Repository, catalog CatalogProvider, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		catalog: catalog,
	}
}

// ListFavorites resolves the stored IDs against the catalog; favorites whose
// activity no longer exists in the catalog are silently skipped.
func (s *ServiceImpl) ListFavorites(ctx context.Context, profileID uuid.UUID) ([]types.Activity, error) {
	l := s.logger.With(slog.String("method", "ListFavorites"), slog.String("profileID", profileID.String()))

	ids, err := s.repo.ListFavorites(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch favorites", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching favorites: %w", err)
	}

	byID := make(map[uuid.UUID]types.Activity)
	for _, a := range s.catalog.Catalog(ctx) {
		byID[a.ID] = a
	}

	var result []types.Activity
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *ServiceImpl) AddFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	l := s.logger.With(slog.String("method", "AddFavorite"), slog.String("profileID", profileID.String()))

	if err := s.repo.AddFavorite(ctx, profileID, activityID); err != nil {
		l.ErrorContext(ctx, "Failed to add favorite", slog.Any("error", err))
		return fmt.Errorf("error adding favorite: %w", err)
	}
	return nil
}

func (s *ServiceImpl) RemoveFavorite(ctx context.Context, profileID, activityID uuid.UUID) error {
	l := s.logger.With(slog.String("method", "RemoveFavorite"), slog.String("profileID", profileID.String()))

	if err := s.repo.RemoveFavorite(ctx, profileID, activityID); err != nil {
		l.ErrorContext(ctx, "Failed to remove favorite", slog.Any("error", err))
		return fmt.Errorf("error removing favorite: %w", err)
	}
	return nil
}
