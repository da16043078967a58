package bafa

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListStages(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	ToggleStage(w http.ResponseWriter, r *http.Request)
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

// ListStages godoc
// @Summary      List BAFA roadmap stages
// @Tags         BAFA
// @Produce      json
// @Success      200 {array} types.BafaStage "Stages"
// @Router       /bafa/stages [get]
func (h *HandlerImpl) ListStages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ListStages"))

	stages, err := h.service.Stages(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch stages", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch stages")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, stages)
}

// GetProgress godoc
// @Summary      Get BAFA progress
// @Tags         BAFA
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Success      200 {object} types.BafaProgress "Roadmap with completion state"
// @Router       /profiles/{profileID}/bafa [get]
func (h *HandlerImpl) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetProgress"))

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	progress, err := h.service.Progress(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch progress", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, progress)
}

// ToggleStage godoc
// @Summary      Toggle a BAFA stage
// @Description  Marks a roadmap stage complete or not and returns the updated progress.
// @Tags         BAFA
// @Accept       json
// @Produce      json
// @Param        profileID path string true "Profile ID"
// @Param        toggle body types.ToggleBafaStageParams true "Stage toggle"
// @Success      200 {object} types.BafaProgress "Updated progress"
// @Failure      404 {object} api.Response "Stage Not Found"
// @Router       /profiles/{profileID}/bafa [put]
func (h *HandlerImpl) ToggleStage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "ToggleStage"))

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid profile ID format")
		return
	}

	var params types.ToggleBafaStageParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.StageID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "stage_id is required")
		return
	}

	progress, err := h.service.ToggleStage(ctx, profileID, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to toggle stage", slog.Any("error", err))
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Stage not found")
		} else {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to toggle stage")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, progress)
}
