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

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

const userColumns = `id, username, email, password_hash, role, status, fcm_token, patient_data, doctor_data, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.FCMToken,
		&user.PatientData,
		&user.DoctorData,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Create(ctx context.Context, user domain.User) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, status, fcm_token, patient_data, doctor_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Status,
		user.FCMToken,
		user.PatientData,
		user.DoctorData,
		time.Now(),
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Username != nil {
		setValues = append(setValues, fmt.Sprintf("username = $%d", argID))
		args = append(args, *dto.Username)
		argID++
	}
	if dto.Email != nil {
		setValues = append(setValues, fmt.Sprintf("email = $%d", argID))
		args = append(args, *dto.Email)
		argID++
	}
	if dto.FCMToken != nil {
		setValues = append(setValues, fmt.Sprintf("fcm_token = $%d", argID))
		args = append(args, *dto.FCMToken)
		argID++
	}
	if dto.PatientData != nil {
		setValues = append(setValues, fmt.Sprintf("patient_data = $%d", argID))
		args = append(args, dto.PatientData)
		argID++
	}
	if dto.DoctorData != nil {
		setValues = append(setValues, fmt.Sprintf("doctor_data = $%d", argID))
		args = append(args, dto.DoctorData)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(setValues, ", "), argID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *UserRepo) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	query := `UPDATE users SET status = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса пользователя: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *UserRepo) UpdateFCMToken(ctx context.Context, id int64, token string) error {
	query := `UPDATE users SET fcm_token = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, token, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления fcm-токена: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AppendMedications adds the given medications to the patient's medical
// profile, skipping ones already present. The row is locked for the
// duration of the transaction so concurrent report submissions do not
// lose entries.
func (r *UserRepo) AppendMedications(ctx context.Context, id int64, medications []string) error {
	if len(medications) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var data *domain.PatientData
	err = tx.QueryRow(ctx, `SELECT patient_data FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("ошибка получения профиля пациента: %w", err)
	}

	if data == nil {
		data = &domain.PatientData{}
	}

	existing := make(map[string]bool, len(data.Medications))
	for _, m := range data.Medications {
		existing[m] = true
	}
	for _, m := range medications {
		if m == "" || existing[m] {
			continue
		}
		data.Medications = append(data.Medications, m)
		existing[m] = true
	}

	_, err = tx.Exec(ctx, `UPDATE users SET patient_data = $1, updated_at = $2 WHERE id = $3`,
		data, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления профиля пациента: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка коммита транзакции: %w", err)
	}

	return nil
}

func (r *UserRepo) ListByRoleAndStatus(ctx context.Context, role domain.UserRole, status domain.UserStatus) ([]domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE role = $1 AND status = $2 ORDER BY created_at DESC`, userColumns)

	rows, err := r.db.Query(ctx, query, role, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки результатов запроса: %w", err)
	}

	return users, nil
}
