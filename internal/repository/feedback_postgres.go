package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"nexgenhealth/internal/domain"
)

type FeedbackRepo struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{
		db: db,
	}
}

func (r *FeedbackRepo) Create(ctx context.Context, userID int64, dto domain.CreateFeedbackDTO) (int64, error) {
	query := `
		INSERT INTO feedback (user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, userID, dto.Rating, dto.Comment, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания отзыва: %w", err)
	}

	return id, nil
}

func (r *FeedbackRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	query := `
		SELECT f.id, f.user_id, u.role, f.rating, f.comment, f.created_at
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *FeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	query := `
		SELECT f.id, f.user_id, u.role, f.rating, f.comment, f.created_at
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC
	`
	return r.list(ctx, query)
}

func (r *FeedbackRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Feedback, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка отзывов: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		var f domain.Feedback
		err := rows.Scan(&f.ID, &f.UserID, &f.UserRole, &f.Rating, &f.Comment, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования отзыва: %w", err)
		}
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return items, nil
}
