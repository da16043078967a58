package badges

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListBadges(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	TrackStat(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// ListBadges godoc
// @Summary      List badges with earned state
// @Tags         Badges
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Success      200 {array} types.BadgeStatus "Badges"
// @Router       /profiles/{profileID}/badges [get]
func (h *HandlerImpl) ListBadges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListBadges"))

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	badges, err := h.service.Badges(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch badges", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch badges")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, badges)
}

// GetStats godoc
// @Summary      Get profile activity stats
// @Tags         Badges
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Success      200 {object} types.ProfileStats "Stats"
// @Router       /profiles/{profileID}/stats [get]
func (h *HandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetStats"))

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	stats, err := h.service.Stats(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch stats", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, stats)
}

// TrackStat godoc
// @Summary      Record a stat event
// @Description  Increments one counter and awards any badge whose condition is now met
// @Tags         Badges
// @Accept       json
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Param        body body types.TrackStatParams true "Event to record"
// @Success      200 {object} api.Response "Recorded"
// @Failure      400 {object} api.Response "Invalid event"
// @Router       /profiles/{profileID}/stats [post]
func (h *HandlerImpl) TrackStat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "TrackStat"))

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	var params types.TrackStatParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if !types.ValidStatEvent(params.Event) {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown stat event")
		return
	}

	if err := h.service.Track(ctx, profileID, params.Event); err != nil {
		l.ErrorContext(ctx, "Failed to track stat", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to track stat")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{Success: true, Message: "Stat recorded"})
}
