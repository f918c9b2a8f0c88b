package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nexgenhealth/internal/domain"
)

type ChatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{
		db: db,
	}
}

const chatColumns = `session_id, user_id, ticket_id, messages, history, created_at, updated_at`

func scanChatSession(row pgx.Row) (*domain.ChatSession, error) {
	var session domain.ChatSession
	err := row.Scan(
		&session.SessionID,
		&session.UserID,
		&session.TicketID,
		&session.Messages,
		&session.History,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatRepo) Save(ctx context.Context, session domain.ChatSession) error {
	query := `
		INSERT INTO chat_sessions (session_id, user_id, ticket_id, messages, history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		session.SessionID,
		session.UserID,
		session.TicketID,
		session.Messages,
		session.History,
		time.Now(),
	)

	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии чата: %w", err)
	}

	return nil
}

func (r *ChatRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM chat_sessions WHERE session_id = $1`, chatColumns)

	session, err := scanChatSession(r.db.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("сессия чата %s: %w", sessionID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения сессии чата: %w", err)
	}

	return session, nil
}

func (r *ChatRepo) Update(ctx context.Context, session domain.ChatSession) error {
	query := `
		UPDATE chat_sessions
		SET messages = $1, history = $2, updated_at = $3
		WHERE session_id = $4
	`

	tag, err := r.db.Exec(ctx, query, session.Messages, session.History, time.Now(), session.SessionID)
	if err != nil {
		return fmt.Errorf("ошибка обновления сессии чата: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("сессия чата %s: %w", session.SessionID, domain.ErrNotFound)
	}

	return nil
}

func (r *ChatRepo) Delete(ctx context.Context, sessionID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM chat_sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("ошибка удаления сессии чата: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("сессия чата %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

func (r *ChatRepo) List(ctx context.Context, filter domain.ChatSessionFilter) ([]domain.ChatSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM chat_sessions WHERE user_id = $1`, chatColumns)
	args := []interface{}{filter.UserID}

	if filter.TicketID != nil {
		query += ` AND ticket_id = $2`
		args = append(args, *filter.TicketID)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка сессий чата: %w", err)
	}
	defer rows.Close()

	sessions := make([]domain.ChatSession, 0)
	for rows.Next() {
		session, err := scanChatSession(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования сессии чата: %w", err)
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return sessions, nil
}
