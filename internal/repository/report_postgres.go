package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nexgenhealth/internal/domain"
)

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{
		db: db,
	}
}

// Create inserts the report. The unique constraint on ticket_id is the
// guard against two doctors submitting for the same ticket at once.
func (r *ReportRepo) Create(ctx context.Context, report domain.Report) (int64, error) {
	query := `
		INSERT INTO reports (ticket_id, doctor_id, diagnosis, recommendations, medications, image_url, docs_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		report.TicketID,
		report.DoctorID,
		report.Diagnosis,
		report.Recommendations,
		report.Medications,
		report.ImageURL,
		report.DocsURL,
		time.Now(),
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("отчет по обращению %d уже существует: %w", report.TicketID, domain.ErrConflict)
		}
		return 0, fmt.Errorf("ошибка создания отчета: %w", err)
	}

	return id, nil
}

func (r *ReportRepo) GetByTicketID(ctx context.Context, ticketID int64) (*domain.Report, error) {
	query := `
		SELECT id, ticket_id, doctor_id, diagnosis, recommendations, medications, image_url, docs_url, created_at
		FROM reports
		WHERE ticket_id = $1
	`

	var report domain.Report
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&report.ID,
		&report.TicketID,
		&report.DoctorID,
		&report.Diagnosis,
		&report.Recommendations,
		&report.Medications,
		&report.ImageURL,
		&report.DocsURL,
		&report.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("отчет по обращению %d: %w", ticketID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения отчета: %w", err)
	}

	return &report, nil
}
