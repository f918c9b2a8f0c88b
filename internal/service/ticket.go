package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/internal/storage"
)

type TicketServiceImpl struct {
	repo          repository.TicketRepository
	userRepo      repository.UserRepository
	notifications NotificationService
	fileStorage   storage.FileStorage
	logger        *zap.Logger
}

func NewTicketService(
	repo repository.TicketRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *TicketServiceImpl {
	return &TicketServiceImpl{
		repo:          repo,
		userRepo:      userRepo,
		notifications: notifications,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// canAccess applies the relationship rule: admins see everything, a
// doctor only assigned tickets, a patient only their own.
func canAccess(ticket *domain.Ticket, actorID int64, role domain.UserRole) bool {
	switch role {
	case domain.UserRoleAdmin:
		return true
	case domain.UserRoleDoctor:
		return ticket.AssignedDoctorID != nil && *ticket.AssignedDoctorID == actorID
	case domain.UserRolePatient:
		return ticket.PatientID == actorID
	default:
		return false
	}
}

func (s *TicketServiceImpl) Create(ctx context.Context, patientID int64, dto domain.CreateTicketDTO, image, document *FileUpload) (*domain.Ticket, error) {
	id, err := s.repo.Create(ctx, patientID, dto)
	if err != nil {
		return nil, err
	}

	imageURL, docsURL := s.uploadAttachments(ctx, fmt.Sprintf("tickets/%d", id), image, document)
	if imageURL != nil || docsURL != nil {
		if err := s.repo.UpdateAttachments(ctx, id, imageURL, docsURL); err != nil {
			s.logger.Error("ошибка сохранения ссылок на вложения", zap.Int64("ticketId", id), zap.Error(err))
		}
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patient, err := s.userRepo.GetByID(ctx, patientID)
	if err != nil {
		s.logger.Warn("ошибка получения данных пациента", zap.Int64("patientId", patientID), zap.Error(err))
		return ticket, nil
	}

	s.notifications.NotifyAdmins(ctx,
		fmt.Sprintf("New ticket created by %s", patient.Username),
		domain.NotificationTicketCreated,
	)

	return ticket, nil
}

func (s *TicketServiceImpl) GetByID(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(ticket, actorID, role) {
		return nil, domain.ErrUnauthorizedAccess
	}

	return ticket, nil
}

func (s *TicketServiceImpl) List(ctx context.Context, actorID int64, role domain.UserRole, status *domain.TicketStatus) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	var err error

	switch role {
	case domain.UserRoleAdmin:
		tickets, err = s.repo.ListAll(ctx)
	case domain.UserRoleDoctor:
		tickets, err = s.repo.ListByDoctor(ctx, actorID)
	case domain.UserRolePatient:
		tickets, err = s.repo.ListByPatient(ctx, actorID)
	default:
		return nil, domain.ErrUnauthorizedAccess
	}

	if err != nil {
		return nil, err
	}

	if status == nil {
		return tickets, nil
	}

	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Status == *status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *TicketServiceImpl) Update(ctx context.Context, actorID int64, role domain.UserRole, id int64, dto domain.UpdateTicketDTO) (*domain.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Обновлять обращение может только пациент-владелец.
	if role != domain.UserRolePatient || ticket.PatientID != actorID {
		return nil, domain.ErrUnauthorizedAccess
	}

	if dto.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *TicketServiceImpl) Delete(ctx context.Context, actorID int64, role domain.UserRole, id int64) error {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if role != domain.UserRolePatient || ticket.PatientID != actorID {
		return domain.ErrUnauthorizedAccess
	}

	return s.repo.Delete(ctx, id)
}

func (s *TicketServiceImpl) AssignDoctor(ctx context.Context, ticketID, doctorID int64) (*domain.Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	doctor, err := s.userRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Role != domain.UserRoleDoctor || doctor.Status != domain.UserStatusAccepted {
		return nil, fmt.Errorf("пользователь %d не является принятым врачом: %w", doctorID, domain.ErrInvalidInput)
	}

	if err := s.repo.AssignDoctor(ctx, ticketID, doctorID); err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, doctorID,
		fmt.Sprintf("A new ticket titled '%s' has been assigned to you.", ticket.Title),
		domain.NotificationTicketAssigned,
		doctor.FCMToken,
	)

	return s.repo.GetByID(ctx, ticketID)
}

// uploadAttachments stores the optional image/document under the given
// logical prefix. Upload failures are logged and the attachment dropped:
// the entity must still be created with degraded data.
func (s *TicketServiceImpl) uploadAttachments(ctx context.Context, prefix string, image, document *FileUpload) (imageURL, docsURL *string) {
	if s.fileStorage == nil {
		return nil, nil
	}

	if image != nil {
		url, err := s.fileStorage.UploadFile(ctx, image.Data, prefix+"/images", image.Filename, image.ContentType)
		if err != nil {
			s.logger.Error("ошибка загрузки изображения", zap.Error(err))
		} else {
			imageURL = &url
		}
	}

	if document != nil {
		url, err := s.fileStorage.UploadFile(ctx, document.Data, prefix+"/docs", document.Filename, document.ContentType)
		if err != nil {
			s.logger.Error("ошибка загрузки документа", zap.Error(err))
		} else {
			docsURL = &url
		}
	}

	return imageURL, docsURL
}
