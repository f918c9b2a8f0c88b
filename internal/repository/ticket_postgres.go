package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nexgenhealth/internal/domain"
)

type TicketRepo struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{
		db: db,
	}
}

const ticketColumns = `id, title, description, bp, sugar_level, weight, symptoms, status, patient_id, assigned_doctor_id, image_url, docs_url, created_at, updated_at`

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.BP,
		&ticket.SugarLevel,
		&ticket.Weight,
		&ticket.Symptoms,
		&ticket.Status,
		&ticket.PatientID,
		&ticket.AssignedDoctorID,
		&ticket.ImageURL,
		&ticket.DocsURL,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepo) Create(ctx context.Context, patientID int64, dto domain.CreateTicketDTO) (int64, error) {
	query := `
		INSERT INTO tickets (title, description, bp, sugar_level, weight, symptoms, status, patient_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		dto.Title,
		dto.Description,
		dto.BP,
		dto.SugarLevel,
		dto.Weight,
		dto.Symptoms,
		domain.TicketStatusPending,
		patientID,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания обращения: %w", err)
	}

	return id, nil
}

func (r *TicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id = $1`, ticketColumns)

	ticket, err := scanTicket(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения обращения: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepo) Update(ctx context.Context, id int64, dto domain.UpdateTicketDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Title != nil {
		setValues = append(setValues, fmt.Sprintf("title = $%d", argID))
		args = append(args, *dto.Title)
		argID++
	}
	if dto.Description != nil {
		setValues = append(setValues, fmt.Sprintf("description = $%d", argID))
		args = append(args, *dto.Description)
		argID++
	}
	if dto.BP != nil {
		setValues = append(setValues, fmt.Sprintf("bp = $%d", argID))
		args = append(args, *dto.BP)
		argID++
	}
	if dto.SugarLevel != nil {
		setValues = append(setValues, fmt.Sprintf("sugar_level = $%d", argID))
		args = append(args, *dto.SugarLevel)
		argID++
	}
	if dto.Weight != nil {
		setValues = append(setValues, fmt.Sprintf("weight = $%d", argID))
		args = append(args, *dto.Weight)
		argID++
	}
	if dto.Symptoms != nil {
		setValues = append(setValues, fmt.Sprintf("symptoms = $%d", argID))
		args = append(args, *dto.Symptoms)
		argID++
	}
	if dto.ImageURL != nil {
		setValues = append(setValues, fmt.Sprintf("image_url = $%d", argID))
		args = append(args, *dto.ImageURL)
		argID++
	}
	if dto.DocsURL != nil {
		setValues = append(setValues, fmt.Sprintf("docs_url = $%d", argID))
		args = append(args, *dto.DocsURL)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tickets SET %s WHERE id = $%d",
		strings.Join(setValues, ", "), argID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления обращения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) UpdateAttachments(ctx context.Context, id int64, imageURL, docsURL *string) error {
	dto := domain.UpdateTicketDTO{ImageURL: imageURL, DocsURL: docsURL}
	return r.Update(ctx, id, dto)
}

func (r *TicketRepo) SetStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	query := `UPDATE tickets SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса обращения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) AssignDoctor(ctx context.Context, id int64, doctorID int64) error {
	query := `UPDATE tickets SET assigned_doctor_id = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, doctorID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка назначения врача: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления обращения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets ORDER BY created_at DESC`, ticketColumns)
	return r.list(ctx, query)
}

func (r *TicketRepo) ListByPatient(ctx context.Context, patientID int64) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE patient_id = $1 ORDER BY created_at DESC`, ticketColumns)
	return r.list(ctx, query, patientID)
}

func (r *TicketRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE assigned_doctor_id = $1 ORDER BY created_at DESC`, ticketColumns)
	return r.list(ctx, query, doctorID)
}

func (r *TicketRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка обращений: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования обращения: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return tickets, nil
}
