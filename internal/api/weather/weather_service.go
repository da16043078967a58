package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

// Forecasts change slowly; cache entries this long before refetching.
const cacheTTL = 10 * time.Minute

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Current(ctx context.Context, lat, lon float64, location string) (*types.CurrentWeather, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	client Client
	cache  *cache.Cache
}

func NewService(client Client, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		client: client,
		cache:  cache.New(cacheTTL, cacheTTL),
	}
}

// Current returns the conditions at the given coordinates. Coordinates at the
// zero value fall back to Paris. Results are cached per rounded coordinate
// pair so repeated widget loads do not hammer the upstream API.
func (s *ServiceImpl) Current(ctx context.Context, lat, lon float64, location string) (*types.CurrentWeather, error) {
	l := s.logger.With(slog.String("method", "Current"))

	if lat == 0 && lon == 0 {
		lat, lon = DefaultLatitude, DefaultLongitude
		location = DefaultLocation
	}
	if location == "" {
		location = "Votre position"
	}

	key := fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
	if cached, found := s.cache.Get(key); found {
		if current, ok := cached.(*types.CurrentWeather); ok {
			out := *current
			out.Location = location
			return &out, nil
		}
	}

	current, err := s.client.Current(ctx, lat, lon)
	if err != nil {
		l.WarnContext(ctx, "Weather fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("weather fetch failed: %w", api.ErrUnavailable)
	}
	current.Location = location

	s.cache.Set(key, current, cacheTTL)
	return current, nil
}
