package activities

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/nasserlabs/anim-tools/app/observability/metrics"
	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

const catalogCacheKey = "catalog"

// errEmptyCatalog wraps ErrNotFound so handlers map it to 404.
var errEmptyCatalog = fmt.Errorf("catalog is empty: %w", api.ErrNotFound)

// Service exposes the read-only catalog operations.
type Service interface {
	Catalog(ctx context.Context) []types.Activity
	List(ctx context.Context, filters types.ActivityFilters) []types.Activity
	Search(ctx context.Context, term string) []types.Activity
	GetByID(ctx context.Context, id uuid.UUID) (*types.Activity, error)
	DailySuggestion(ctx context.Context, day time.Time) (*types.Activity, error)
	Categories(ctx context.Context) ([]types.Category, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	cache  *cache.Cache
	group  singleflight.Group
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(24*time.Hour, 1*time.Hour),
	}
}

// Catalog returns the full activity catalog. It is loaded once, cached and
// treated as immutable afterwards; a load failure degrades to an empty
// catalog so callers see the uniform "no data" path instead of an error.
func (s *ServiceImpl) Catalog(ctx context.Context) []types.Activity {
	if cached, found := s.cache.Get(catalogCacheKey); found {
		return cached.([]types.Activity)
	}

	v, err, _ := s.group.Do(catalogCacheKey, func() (interface{}, error) {
		activities, err := s.repo.GetAllActivities(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(catalogCacheKey, activities, cache.NoExpiration)
		metrics.Get().CatalogSize.Record(ctx, int64(len(activities)))
		return activities, nil
	})
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		s.logger.WarnContext(ctx, "Catalog load failed, serving empty catalog", slog.Any("error", err))
		return nil
	}
	return v.([]types.Activity)
}

// List filters the catalog. Zero-valued filter fields match everything.
func (s *ServiceImpl) List(ctx context.Context, filters types.ActivityFilters) []types.Activity {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "List")
	defer span.End()

	var result []types.Activity
	for _, a := range s.Catalog(ctx) {
		if filters.Category != "" && a.Category != filters.Category {
			continue
		}
		if filters.Age > 0 && !a.AgeRange.Contains(filters.Age) {
			continue
		}
		if filters.MaxDuration > 0 && a.DurationMinutes > filters.MaxDuration {
			continue
		}
		if filters.EnergyLevel != "" && a.EnergyLevel != filters.EnergyLevel {
			continue
		}
		result = append(result, a)
	}

	span.SetAttributes(attribute.Int("result.count", len(result)))
	return result
}

// Search matches a term against title, description, category and materials,
// case-insensitively. Terms shorter than two characters return nothing.
func (s *ServiceImpl) Search(ctx context.Context, term string) []types.Activity {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.term", term),
	))
	defer span.End()

	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < 2 {
		return nil
	}

	var result []types.Activity
	for _, a := range s.Catalog(ctx) {
		if activityMatches(a, term) {
			result = append(result, a)
		}
	}

	span.SetAttributes(attribute.Int("result.count", len(result)))
	return result
}

func activityMatches(a types.Activity, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Description), term) ||
		strings.Contains(strings.ToLower(a.Category), term) {
		return true
	}
	for _, m := range a.Materials {
		if strings.Contains(strings.ToLower(m), term) {
			return true
		}
	}
	return false
}

func (s *ServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*types.Activity, error) {
	l := s.logger.With(slog.String("method", "GetByID"), slog.String("activityID", id.String()))

	activity, err := s.repo.GetActivity(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch activity", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching activity: %w", err)
	}
	return activity, nil
}

// DailySuggestion picks one activity deterministically for a given day: the
// date string is hashed and the hash indexes the catalog, so every client
// sees the same suggestion all day and a new one the next day.
func (s *ServiceImpl) DailySuggestion(ctx context.Context, day time.Time) (*types.Activity, error) {
	catalog := s.Catalog(ctx)
	if len(catalog) == 0 {
		return nil, fmt.Errorf("daily suggestion: %w", errEmptyCatalog)
	}

	key := day.Format("2006-01-02")
	var hash uint32
	for _, c := range key {
		hash = hash*31 + uint32(c)
	}
	a := catalog[int(hash)%len(catalog)]
	return &a, nil
}

func (s *ServiceImpl) Categories(ctx context.Context) ([]types.Category, error) {
	l := s.logger.With(slog.String("method", "Categories"))

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch categories", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return categories, nil
}
