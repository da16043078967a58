package favorites

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListFavorites(w http.ResponseWriter, r *http.Request)
	AddFavorite(w http.ResponseWriter, r *http.Request)
	RemoveFavorite(w http.ResponseWriter, r *http.Request)
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

func pathIDs(w http.ResponseWriter, r *http.Request) (profileID, activityID uuid.UUID, ok bool) {
	var err error
	profileID, err = uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return uuid.Nil, uuid.Nil, false
	}
	if raw := chi.URLParam(r, "activityID"); raw != "" {
		activityID, err = uuid.Parse(raw)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid activity ID format")
			return uuid.Nil, uuid.Nil, false
		}
	}
	return profileID, activityID, true
}

// ListFavorites godoc
// @Summary      List favorites
// @Tags         Favorites
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Success      200 {array} types.Activity "Favorite activities"
// @Router       /profiles/{profileID}/favorites [get]
func (h *HandlerImpl) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListFavorites"))

	profileID, _, ok := pathIDs(w, r)
	if !ok {
		return
	}

	result, err := h.service.ListFavorites(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list favorites", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list favorites")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// AddFavorite godoc
// @Summary      Mark an activity as favorite
// @Tags         Favorites
// @Param        profileID path string true "Profile ID"
// @Param        activityID path string true "Activity ID"
// @Success      204 "Added"
// @Router       /profiles/{profileID}/favorites/{activityID} [put]
func (h *HandlerImpl) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "AddFavorite"))

	profileID, activityID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.AddFavorite(ctx, profileID, activityID); err != nil {
		l.ErrorContext(ctx, "Failed to add favorite", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// RemoveFavorite godoc
// @Summary      Remove an activity from favorites
// @Tags         Favorites
// @Param        profileID path string true "Profile ID"
// @Param        activityID path string true "Activity ID"
// @Success      204 "Removed"
// @Router       /profiles/{profileID}/favorites/{activityID} [delete]
func (h *HandlerImpl) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "RemoveFavorite"))

	profileID, activityID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(ctx, profileID, activityID); err != nil {
		l.ErrorContext(ctx, "Failed to remove favorite", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
