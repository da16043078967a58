package planning

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	AddEntry(w http.ResponseWriter, r *http.Request)
	RemoveEntry(w http.ResponseWriter, r *http.Request)
	ClearWeek(w http.ResponseWriter, r *http.Request)
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

func profileIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetWeek godoc
// @Summary      Get planning week
// @Description  Returns the planner entries of one week (query param week=YYYY-MM-DD).
// @Tags         Planning
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Param        week query string true "Week start date (YYYY-MM-DD)"
// @Success      200 {array} types.PlanningEntry "Week entries"
// @Router       /profiles/{profileID}/planning [get]
func (h *HandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetWeek"))

	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.service.ListWeek(ctx, profileID, r.URL.Query().Get("week"))
	if err != nil {
		if errors.Is(err, api.ErrBadInput) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to fetch planning week", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch planning week")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, entries)
}

// AddEntry godoc
// @Summary      Add a planning entry
// @Tags         Planning
// @Accept       json
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Param        entry body types.CreatePlanningEntryParams true "Entry parameters"
// @Success      201 {object} types.PlanningEntry "Created entry"
// @Failure      400 {object} api.Response "Invalid Input"
// @Router       /profiles/{profileID}/planning [post]
func (h *HandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "AddEntry"))

	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	var params types.CreatePlanningEntryParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.service.AddEntry(ctx, profileID, params)
	if err != nil {
		if errors.Is(err, api.ErrBadInput) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to add planning entry", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add planning entry")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, entry)
}

// RemoveEntry godoc
// @Summary      Remove a planning entry
// @Tags         Planning
// @Param        profileID path string true "Profile ID"
// @Param        entryID path string true "Entry ID"
// @Success      204 "Removed"
// @Failure      404 {object} api.Response "Entry Not Found"
// @Router       /profiles/{profileID}/planning/{entryID} [delete]
func (h *HandlerImpl) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "RemoveEntry"))

	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	if err := h.service.RemoveEntry(ctx, profileID, entryID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Planning entry not found")
			return
		}
		l.ErrorContext(ctx, "Failed to remove planning entry", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to remove planning entry")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// ClearWeek godoc
// @Summary      Clear a planning week
// @Tags         Planning
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Param        week query string true "Week start date (YYYY-MM-DD)"
// @Success      200 {object} api.Response "Cleared"
// @Router       /profiles/{profileID}/planning [delete]
func (h *HandlerImpl) ClearWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ClearWeek"))

	profileID, ok := profileIDParam(w, r)
	if !ok {
		return
	}

	removed, err := h.service.ClearWeek(ctx, profileID, r.URL.Query().Get("week"))
	if err != nil {
		if errors.Is(err, api.ErrBadInput) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to clear planning week", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to clear planning week")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, api.Response{
		Success: true,
		Message: fmt.Sprintf("Week cleared, %d entries removed", removed),
	})
}
