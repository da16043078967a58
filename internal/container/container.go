package container

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nasserlabs/anim-tools/config"
	"github.com/nasserlabs/anim-tools/internal/api/activities"
	"github.com/nasserlabs/anim-tools/internal/api/assistant"
	"github.com/nasserlabs/anim-tools/internal/api/badges"
	"github.com/nasserlabs/anim-tools/internal/api/bafa"
	"github.com/nasserlabs/anim-tools/internal/api/favorites"
	"github.com/nasserlabs/anim-tools/internal/api/planning"
	"github.com/nasserlabs/anim-tools/internal/api/weather"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool

	ActivityHandler  *activities.HandlerImpl
	AssistantHandler *assistant.HandlerImpl
	PlanningHandler  *planning.HandlerImpl
	BafaHandler      *bafa.HandlerImpl
	BadgesHandler    *badges.HandlerImpl
	FavoritesHandler *favorites.HandlerImpl
	WeatherHandler   *weather.HandlerImpl
}

// NewContainer wires repositories, services and handlers. The badges service
// doubles as the stats tracker every other feature reports events to, and the
// activities service is the single catalog source for assistant and favorites.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Container {
	badgesRepo := badges.NewPostgresRepository(pool, logger)
	badgesService := badges.NewService(badgesRepo, logger)
	badgesHandler := badges.NewHandlerImpl(badgesService, logger)

	activityRepo := activities.NewPostgresRepository(pool, logger)
	activityService := activities.NewService(activityRepo, logger)
	activityHandler := activities.NewHandlerImpl(activityService, badgesService, logger)

	assistantRepo := assistant.NewPostgresRepository(pool, logger)
	assistantService := assistant.NewService(assistantRepo, activityService, nil, logger)
	assistantHandler := assistant.NewHandlerImpl(assistantService, logger)

	planningRepo := planning.NewPostgresRepository(pool, logger)
	planningService := planning.NewService(planningRepo, badgesService, logger)
	planningHandler := planning.NewHandlerImpl(planningService, logger)

	bafaRepo := bafa.NewPostgresRepository(pool, logger)
	bafaService := bafa.NewService(bafaRepo, badgesService, logger)
	bafaHandler := bafa.NewHandlerImpl(bafaService, logger)

	favoritesRepo := favorites.NewPostgresRepository(pool, logger)
	favoritesService := favorites.NewService(favoritesRepo, activityService, logger)
	favoritesHandler := favorites.NewHandlerImpl(favoritesService, logger)

	weatherClient := weather.NewOpenMeteoClient(logger)
	weatherService := weather.NewService(weatherClient, logger)
	weatherHandler := weather.NewHandlerImpl(weatherService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		Pool:             pool,
		ActivityHandler:  activityHandler,
		AssistantHandler: assistantHandler,
		PlanningHandler:  planningHandler,
		BafaHandler:      bafaHandler,
		BadgesHandler:    badgesHandler,
		FavoritesHandler: favoritesHandler,
		WeatherHandler:   weatherHandler,
	}
}
