package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"nexgenhealth/internal/domain"
)

type Repositories struct {
	User         UserRepository
	Ticket       TicketRepository
	Report       ReportRepository
	Chat         ChatRepository
	Notification NotificationRepository
	Feedback     FeedbackRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Ticket:       NewTicketRepository(db),
		Report:       NewReportRepository(db),
		Chat:         NewChatRepository(db),
		Notification: NewNotificationRepository(db),
		Feedback:     NewFeedbackRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error
	UpdateFCMToken(ctx context.Context, id int64, token string) error
	AppendMedications(ctx context.Context, id int64, medications []string) error
	ListByRoleAndStatus(ctx context.Context, role domain.UserRole, status domain.UserStatus) ([]domain.User, error)
}

type TicketRepository interface {
	Create(ctx context.Context, patientID int64, dto domain.CreateTicketDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Update(ctx context.Context, id int64, dto domain.UpdateTicketDTO) error
	UpdateAttachments(ctx context.Context, id int64, imageURL, docsURL *string) error
	SetStatus(ctx context.Context, id int64, status domain.TicketStatus) error
	AssignDoctor(ctx context.Context, id int64, doctorID int64) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.Ticket, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Ticket, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report domain.Report) (int64, error)
	GetByTicketID(ctx context.Context, ticketID int64) (*domain.Report, error)
}

type ChatRepository interface {
	Save(ctx context.Context, session domain.ChatSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*domain.ChatSession, error)
	Update(ctx context.Context, session domain.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context, filter domain.ChatSessionFilter) ([]domain.ChatSession, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, userID int64, dto domain.CreateFeedbackDTO) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}
