package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nasserlabs/anim-tools/app/observability/metrics"
	"github.com/nasserlabs/anim-tools/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// ActivityCatalog supplies the immutable activity catalog. An empty slice is
// the degraded "no data" state, never an error.
type ActivityCatalog interface {
	Catalog(ctx context.Context) []types.Activity
}

// Service is the conversational entry point around the matching engine.
type Service interface {
	CreateSession(ctx context.Context, profileID uuid.UUID) (*types.ChatSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
	ProcessQuery(ctx context.Context, sessionID uuid.UUID, query string) (*types.AssistantReply, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	repo    Repository
	catalog ActivityCatalog
	pick    IndexPicker
}

// NewService creates the assistant service. A nil picker defaults to
// math/rand; tests inject a deterministic one.
func NewService(repo Repository, catalog ActivityCatalog, pick IndexPicker, logger *slog.Logger) *ServiceImpl {
	if pick == nil {
		pick = rand.Intn
	}
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		catalog: catalog,
		pick:    pick,
	}
}

func (s *ServiceImpl) CreateSession(ctx context.Context, profileID uuid.UUID) (*types.ChatSession, error) {
	l := s.logger.With(slog.String("method", "CreateSession"), slog.String("profileID", profileID.String()))

	session, err := s.repo.CreateSession(ctx, profileID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create chat session", slog.Any("error", err))
		return nil, fmt.Errorf("error creating chat session: %w", err)
	}

	l.InfoContext(ctx, "Chat session created", slog.String("sessionID", session.ID.String()))
	return session, nil
}

func (s *ServiceImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	l := s.logger.With(slog.String("method", "GetSession"), slog.String("sessionID", sessionID.String()))

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch chat session", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching chat session: %w", err)
	}
	return session, nil
}

// ProcessQuery runs one full assistant turn: extract criteria, score the
// catalog, rank, select the diversified suggestion set and compose the reply,
// then persists both sides of the exchange on the session.
func (s *ServiceImpl) ProcessQuery(ctx context.Context, sessionID uuid.UUID, query string) (*types.AssistantReply, error) {
	ctx, span := otel.Tracer("AssistantService").Start(ctx, "ProcessQuery", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "ProcessQuery"), slog.String("sessionID", sessionID.String()))

	// The session must exist before we record anything on it.
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		l.WarnContext(ctx, "Query against unknown session", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "session lookup failed")
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if _, err := s.repo.AppendMessage(ctx, sessionID, types.RoleUser, query, ""); err != nil {
		l.ErrorContext(ctx, "Failed to record user message", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("error recording user message: %w", err)
	}

	catalog := s.catalog.Catalog(ctx)
	reply := Answer(catalog, query, s.pick)

	span.SetAttributes(
		attribute.Int("catalog.size", len(catalog)),
		attribute.Bool("query.matched", reply.Suggestions != nil),
	)
	metrics.Get().AssistantQueriesTotal.Add(ctx, 1)
	if reply.Suggestions == nil {
		metrics.Get().AssistantNoMatchTotal.Add(ctx, 1)
	}

	if _, err := s.repo.AppendMessage(ctx, sessionID, types.RoleAssistant, reply.Text, reply.Tip); err != nil {
		l.ErrorContext(ctx, "Failed to record assistant message", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("error recording assistant message: %w", err)
	}

	l.InfoContext(ctx, "Query processed", slog.Bool("matched", reply.Suggestions != nil))
	span.SetStatus(codes.Ok, "query processed")
	return reply, nil
}

// Answer runs the pure matching pipeline over an immutable catalog. It has no
// side effects and is deterministic up to the injected tip picker.
func Answer(catalog []types.Activity, query string, pick IndexPicker) *types.AssistantReply {
	criteria := ExtractCriteria(query)
	scored := ScoreActivities(catalog, criteria)
	ranked := RankCandidates(scored)
	suggestions := SelectSuggestions(ranked)
	text, tip := ComposeResponse(criteria, suggestions, pick)

	return &types.AssistantReply{
		Text:        text,
		Suggestions: suggestions,
		Tip:         tip,
	}
}
