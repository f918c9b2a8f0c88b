package service

import (
	"context"

	"go.uber.org/zap"

	"nexgenhealth/config"
	"nexgenhealth/internal/ai"
	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/push"
	"nexgenhealth/internal/repository"
	"nexgenhealth/internal/storage"
)

// FileUpload is a raw attachment handed in from the transport layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	ChatModel   ai.ChatModel
	Push        push.Sender
}

type Services struct {
	Auth         AuthService
	User         UserService
	Admin        AdminService
	Ticket       TicketService
	Report       ReportService
	Chat         ChatService
	Notification NotificationService
	Feedback     FeedbackService
}

func NewServices(deps Deps) *Services {
	notification := NewNotificationService(deps.Repos.Notification, deps.Repos.User, deps.Push, deps.Logger)
	ticket := NewTicketService(deps.Repos.Ticket, deps.Repos.User, notification, deps.FileStorage, deps.Logger)

	return &Services{
		Auth:         NewAuthService(deps.Repos.User, notification, deps.Config.JWT, deps.Logger),
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Admin:        NewAdminService(deps.Repos.User, notification, deps.Logger),
		Ticket:       ticket,
		Report:       NewReportService(deps.Repos.Report, deps.Repos.Ticket, deps.Repos.User, notification, deps.FileStorage, deps.Logger),
		Chat:         NewChatService(deps.Repos.Chat, deps.Repos.Ticket, deps.Repos.User, deps.ChatModel, deps.FileStorage, deps.Logger),
		Notification: notification,
		Feedback:     NewFeedbackService(deps.Repos.Feedback, deps.Logger),
	}
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest) (*domain.Token, error)
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
	StatusByEmail(ctx context.Context, email string) (domain.UserStatus, error)
}

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) (*domain.User, error)
	UpdateFCMToken(ctx context.Context, id int64, token string) error
}

type AdminService interface {
	PendingApprovals(ctx context.Context) ([]domain.User, error)
	SetRegistrationStatus(ctx context.Context, userID int64, status domain.UserStatus) error
	ListPatients(ctx context.Context) ([]domain.User, error)
	ListDoctors(ctx context.Context) ([]domain.User, error)
}

type TicketService interface {
	Create(ctx context.Context, patientID int64, dto domain.CreateTicketDTO, image, document *FileUpload) (*domain.Ticket, error)
	GetByID(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Ticket, error)
	List(ctx context.Context, actorID int64, role domain.UserRole, status *domain.TicketStatus) ([]domain.Ticket, error)
	Update(ctx context.Context, actorID int64, role domain.UserRole, id int64, dto domain.UpdateTicketDTO) (*domain.Ticket, error)
	Delete(ctx context.Context, actorID int64, role domain.UserRole, id int64) error
	AssignDoctor(ctx context.Context, ticketID, doctorID int64) (*domain.Ticket, error)
}

type ReportService interface {
	Submit(ctx context.Context, doctorID int64, role domain.UserRole, ticketID int64, dto domain.CreateReportDTO, image, document *FileUpload) (*domain.Report, error)
	GetByTicket(ctx context.Context, actorID int64, role domain.UserRole, ticketID int64) (*domain.Report, error)
}

type ChatService interface {
	Start(ctx context.Context, actorID int64, role domain.UserRole, ticketID *int64, message string, image, document *FileUpload) (*domain.ChatSession, error)
	Continue(ctx context.Context, sessionID, message string, image, document *FileUpload) (*domain.ChatSession, error)
	End(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*domain.ChatSession, error)
	List(ctx context.Context, userID int64, ticketID *int64) ([]domain.ChatSession, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string, kind domain.NotificationType, fcmToken string)
	NotifyAdmins(ctx context.Context, message string, kind domain.NotificationType)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type FeedbackService interface {
	Create(ctx context.Context, userID int64, dto domain.CreateFeedbackDTO) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}
