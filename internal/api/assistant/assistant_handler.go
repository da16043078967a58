package assistant

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nasserlabs/anim-tools/internal/api"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	PostQuery(w http.ResponseWriter, r *http.Request)
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

// CreateSessionRequest opens a conversation for a profile.
type CreateSessionRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
}

// QueryRequest carries one user message.
type QueryRequest struct {
	Text string `json:"text"`
}

// CreateSession godoc
// @Summary      Open a chat session
// @Description  Creates a new assistant conversation for a profile.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        session body CreateSessionRequest true "Session parameters"
// @Success      201 {object} types.ChatSession "Created session"
// @Failure      400 {object} api.Response "Invalid Input"
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /assistant/sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "CreateSession"))

	var req CreateSessionRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProfileID == uuid.Nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "profile_id is required")
		return
	}

	session, err := h.service.CreateSession(ctx, req.ProfileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create session", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, session)
}

// GetSession godoc
// @Summary      Get a chat session
// @Description  Returns a session with its full conversation history.
// @Tags         Assistant
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.ChatSession "Session with history"
// @Failure      404 {object} api.Response "Session Not Found"
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /assistant/sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "GetSession"))

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	session, err := h.service.GetSession(ctx, sessionID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch session", slog.Any("error", err))
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Session not found")
		} else {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch session")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, session)
}

// PostQuery godoc
// @Summary      Ask the assistant
// @Description  Processes one free-text query and returns the reply with role-tagged activity suggestions.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        query body QueryRequest true "User message"
// @Success      200 {object} types.AssistantReply "Assistant reply"
// @Failure      400 {object} api.Response "Invalid Input"
// @Failure      404 {object} api.Response "Session Not Found"
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /assistant/sessions/{sessionID}/query [post]
func (h *HandlerImpl) PostQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("handler", "PostQuery"))

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	var req QueryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "text must not be empty")
		return
	}

	reply, err := h.service.ProcessQuery(ctx, sessionID, req.Text)
	if err != nil {
		l.ErrorContext(ctx, "Failed to process query", slog.Any("error", err))
		if errors.Is(err, api.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Session not found")
		} else {
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process query")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, reply)
}
