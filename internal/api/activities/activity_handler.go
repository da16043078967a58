package activities

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

// ProfileHeader optionally identifies the caller for gamification tracking.
const ProfileHeader = "X-Profile-ID"

// StatsTracker reports user actions to the gamification layer. Tracking
// failures never fail the request.
type StatsTracker interface {
	Track(ctx context.Context, profileID uuid.UUID, event types.StatEvent) error
}

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListActivities(w http.ResponseWriter, r *http.Request)
	SearchActivities(w http.ResponseWriter, r *http.Request)
	GetActivity(w http.ResponseWriter, r *http.Request)
	GetDailySuggestion(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	service Service
	stats   StatsTracker
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, stats StatsTracker, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		stats:   stats,
		logger:  logger,
	}
}

func (h *HandlerImpl) track(ctx context.Context, r *http.Request, event types.StatEvent) {
	profileID, err := uuid.Parse(r.Header.Get(ProfileHeader))
	if err != nil || h.stats == nil {
		return
	}
	if err := h.stats.Track(ctx, profileID, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to track stat",
			slog.String("event", string(event)), slog.Any("error", err))
	}
}

// ListActivities godoc
// @Summary      List activities
// @Description  Lists catalog activities with optional category, age, duration and energy filters.
// @Tags         Activities
// @Produce      json
// @Param        category query string false "Category ID"
// @Param        age query int false "Child age in years"
// @Param        max_duration query int false "Maximum duration in minutes"
// @Param        energy query string false "Energy level"
// @Success      200 {array} types.Activity "Activities"
// @Router       /activities [get]
func (h *HandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters := types.ActivityFilters{
		Category:    r.URL.Query().Get("category"),
		EnergyLevel: types.EnergyLevel(r.URL.Query().Get("energy")),
	}
	if v := r.URL.Query().Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "age must be an integer")
			return
		}
		filters.Age = age
	}
	if v := r.URL.Query().Get("max_duration"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "max_duration must be an integer")
			return
		}
		filters.MaxDuration = d
	}

	result := h.service.List(ctx, filters)
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// SearchActivities godoc
// @Summary      Search activities
// @Description  Full-text search over titles, descriptions, categories and materials.
// @Tags         Activities
// @Produce      json
// @Param        q query string true "Search term (min 2 characters)"
// @Success      200 {array} types.Activity "Matching activities"
// @Router       /activities/search [get]
func (h *HandlerImpl) SearchActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := r.URL.Query().Get("q")
	result := h.service.Search(ctx, term)
	h.track(ctx, r, types.StatSearchDone)

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// GetActivity godoc
// @Summary      Get one activity
// @Tags         Activities
// @Produce      json
// @Param        activityID path string true "Activity ID"
// @Success      200 {object} types.Activity "Activity"
// @Failure      404 {object} api.Response "Activity Not Found"
// @Router       /activities/{activityID} [get]
func (h *HandlerImpl) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetActivity"))

	id, err := uuid.Parse(chi.URLParam(r, "activityID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid activity ID format")
		return
	}

	activity, err := h.service.GetByID(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch activity", slog.Any("error", err))
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Activity not found")
		} else {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch activity")
		}
		return
	}

	h.track(ctx, r, types.StatActivityViewed)
	api.WriteJSONResponse(w, r, http.StatusOK, activity)
}

// GetDailySuggestion godoc
// @Summary      Activity of the day
// @Description  Returns the deterministic date-seeded daily pick.
// @Tags         Activities
// @Produce      json
// @Success      200 {object} types.Activity "Daily suggestion"
// @Failure      404 {object} api.Response "Empty catalog"
// @Router       /activities/daily-suggestion [get]
func (h *HandlerImpl) GetDailySuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetDailySuggestion"))

	activity, err := h.service.DailySuggestion(ctx, time.Now())
	if err != nil {
		l.ErrorContext(ctx, "Failed to compute daily suggestion", slog.Any("error", err))
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Catalog is empty")
		} else {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute daily suggestion")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, activity)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         Activities
// @Produce      json
// @Success      200 {array} types.Category "Categories"
// @Router       /categories [get]
func (h *HandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListCategories"))

	categories, err := h.service.Categories(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch categories", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, categories)
}
