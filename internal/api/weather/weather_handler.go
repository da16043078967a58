package weather

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nasserlabs/anim-tools/internal/api"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
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

// GetCurrent godoc
// @Summary      Current weather
// @Description  Current conditions with an activity advice line. Defaults to Paris when no coordinates are given.
// @Tags         Weather
// @Produce      json
// @Param        lat query number false "Latitude"
// @Param        lon query number false "Longitude"
// @Success      200 {object} types.CurrentWeather "Current conditions"
// @Failure      503 {object} api.Response "Upstream weather API unavailable"
// @Router       /weather [get]
func (h *HandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetCurrent"))

	var lat, lon float64
	var location string
	if raw := r.URL.Query().Get("lat"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid latitude")
			return
		}
		lat = v
		location = "Votre position"
	}
	if raw := r.URL.Query().Get("lon"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid longitude")
			return
		}
		lon = v
	}

	current, err := h.service.Current(ctx, lat, lon, location)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			api.ErrorResponse(w, r, http.StatusServiceUnavailable, "Weather service unavailable")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch weather", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch weather")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, current)
}
