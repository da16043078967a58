package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nasserlabs/anim-tools/internal/api"
	"github.com/nasserlabs/anim-tools/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository persists chat sessions and their conversation history. The
// matching engine itself never touches storage; only the session shell does.
type Repository interface {
	CreateSession(ctx context.Context, profileID uuid.UUID) (*types.ChatSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
	AppendMessage(ctx context.Context, sessionID uuid.UUID, role types.MessageRole, content, tip string) (*types.ChatMessage, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool api.PGXPool
}

func NewPostgresRepository(pool api.PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pool,
	}
}

func (r *PostgresRepository) CreateSession(ctx context.Context, profileID uuid.UUID) (*types.ChatSession, error) {
	query := `
        INSERT INTO chat_sessions (profile_id)
        VALUES ($1)
        RETURNING id, profile_id, created_at, updated_at
    `
	var s types.ChatSession
	if err := r.pgpool.QueryRow(ctx, query, profileID).Scan(
		&s.ID, &s.ProfileID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	query := `
        SELECT id, profile_id, created_at, updated_at
        FROM chat_sessions
        WHERE id = $1
    `
	var s types.ChatSession
	if err := r.pgpool.QueryRow(ctx, query, sessionID).Scan(
		&s.ID, &s.ProfileID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chat session %s: %w", sessionID, api.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch chat session: %w", err)
	}

	messages, err := r.sessionMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.Messages = messages
	return &s, nil
}

func (r *PostgresRepository) sessionMessages(ctx context.Context, sessionID uuid.UUID) ([]types.ChatMessage, error) {
	query := `
        SELECT id, session_id, role, content, tip, created_at
        FROM chat_messages
        WHERE session_id = $1
        ORDER BY created_at, id
    `
	rows, err := r.pgpool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat messages: %w", err)
	}
	defer rows.Close()

	var messages []types.ChatMessage
	for rows.Next() {
		var m types.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Tip, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}
	return messages, nil
}

func (r *PostgresRepository) AppendMessage(ctx context.Context, sessionID uuid.UUID, role types.MessageRole, content, tip string) (*types.ChatMessage, error) {
	tx, err := r.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO chat_messages (session_id, role, content, tip)
        VALUES ($1, $2, $3, $4)
        RETURNING id, session_id, role, content, tip, created_at
    `
	var m types.ChatMessage
	if err := tx.QueryRow(ctx, query, sessionID, role, content, tip).Scan(
		&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Tip, &m.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to insert chat message: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE chat_sessions SET updated_at = now() WHERE id = $1`, sessionID); err != nil {
		return nil, fmt.Errorf("failed to touch chat session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &m, nil
}
