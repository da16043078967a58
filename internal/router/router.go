package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nasserlabs/anim-tools/internal/api/activities"
	"github.com/nasserlabs/anim-tools/internal/api/assistant"
	"github.com/nasserlabs/anim-tools/internal/api/badges"
	"github.com/nasserlabs/anim-tools/internal/api/bafa"
	"github.com/nasserlabs/anim-tools/internal/api/favorites"
	"github.com/nasserlabs/anim-tools/internal/api/planning"
	"github.com/nasserlabs/anim-tools/internal/api/weather"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	ActivityHandler  activities.Handler
	AssistantHandler assistant.Handler
	PlanningHandler  planning.Handler
	BafaHandler      bafa.Handler
	BadgesHandler    badges.Handler
	FavoritesHandler favorites.Handler
	WeatherHandler   weather.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Profile-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", cfg.ActivityHandler.ListActivities)
			r.Get("/search", cfg.ActivityHandler.SearchActivities)
			r.Get("/daily-suggestion", cfg.ActivityHandler.GetDailySuggestion)
			r.Get("/{activityID}", cfg.ActivityHandler.GetActivity)
		})
		r.Get("/categories", cfg.ActivityHandler.ListCategories)

		r.Route("/assistant/sessions", func(r chi.Router) {
			r.Post("/", cfg.AssistantHandler.CreateSession)
			r.Get("/{sessionID}", cfg.AssistantHandler.GetSession)
			r.Post("/{sessionID}/query", cfg.AssistantHandler.PostQuery)
		})

		r.Get("/bafa/stages", cfg.BafaHandler.ListStages)
		r.Get("/weather", cfg.WeatherHandler.GetCurrent)

		r.Route("/profiles/{profileID}", func(r chi.Router) {
			r.Route("/planning", func(r chi.Router) {
				r.Get("/", cfg.PlanningHandler.GetWeek)
				r.Post("/", cfg.PlanningHandler.AddEntry)
				r.Delete("/", cfg.PlanningHandler.ClearWeek)
				r.Delete("/{entryID}", cfg.PlanningHandler.RemoveEntry)
			})

			r.Get("/bafa", cfg.BafaHandler.GetProgress)
			r.Put("/bafa", cfg.BafaHandler.ToggleStage)

			r.Get("/badges", cfg.BadgesHandler.ListBadges)
			r.Get("/stats", cfg.BadgesHandler.GetStats)
			r.Post("/stats", cfg.BadgesHandler.TrackStat)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", cfg.FavoritesHandler.ListFavorites)
				r.Put("/{activityID}", cfg.FavoritesHandler.AddFavorite)
				r.Delete("/{activityID}", cfg.FavoritesHandler.RemoveFavorite)
			})
		})
	})

	return r
}
