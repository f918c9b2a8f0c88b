package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/internal/storage"
)

type ReportServiceImpl struct {
	repo          repository.ReportRepository
	ticketRepo    repository.TicketRepository
	userRepo      repository.UserRepository
	notifications NotificationService
	fileStorage   storage.FileStorage
	logger        *zap.Logger
}

func NewReportService(
	repo repository.ReportRepository,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		repo:          repo,
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		notifications: notifications,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// Submit creates the single report for a ticket. Only the assigned doctor
// may submit; a second submission fails with a conflict. On success the
// ticket flips to resolved, the report's medications are appended to the
// patient's profile and the patient is notified.
func (s *ReportServiceImpl) Submit(ctx context.Context, doctorID int64, role domain.UserRole, ticketID int64, dto domain.CreateReportDTO, image, document *FileUpload) (*domain.Report, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if role != domain.UserRoleDoctor || ticket.AssignedDoctorID == nil || *ticket.AssignedDoctorID != doctorID {
		return nil, domain.ErrUnauthorizedAccess
	}

	report := domain.Report{
		TicketID:        ticketID,
		DoctorID:        doctorID,
		Diagnosis:       dto.Diagnosis,
		Recommendations: dto.Recommendations,
		Medications:     dto.Medications,
	}

	if s.fileStorage != nil {
		prefix := fmt.Sprintf("reports/%d", ticketID)
		if image != nil {
			url, err := s.fileStorage.UploadFile(ctx, image.Data, prefix+"/images", image.Filename, image.ContentType)
			if err != nil {
				s.logger.Error("ошибка загрузки изображения отчета", zap.Error(err))
			} else {
				report.ImageURL = url
			}
		}
		if document != nil {
			url, err := s.fileStorage.UploadFile(ctx, document.Data, prefix+"/docs", document.Filename, document.ContentType)
			if err != nil {
				s.logger.Error("ошибка загрузки документа отчета", zap.Error(err))
			} else {
				report.DocsURL = url
			}
		}
	}

	// Уникальный индекс по ticket_id защищает от гонки двух врачей.
	id, err := s.repo.Create(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id

	if err := s.ticketRepo.SetStatus(ctx, ticketID, domain.TicketStatusResolved); err != nil {
		s.logger.Error("ошибка обновления статуса обращения",
			zap.Int64("ticketId", ticketID),
			zap.Error(err),
		)
	}

	// Дополнение профиля лекарствами вторично, ошибка не отменяет
	// созданный отчет.
	if len(dto.Medications) > 0 {
		if err := s.userRepo.AppendMedications(ctx, ticket.PatientID, dto.Medications); err != nil {
			s.logger.Error("ошибка дополнения профиля пациента",
				zap.Int64("patientId", ticket.PatientID),
				zap.Error(err),
			)
		}
	}

	patient, err := s.userRepo.GetByID(ctx, ticket.PatientID)
	if err != nil {
		s.logger.Warn("ошибка получения данных пациента", zap.Int64("patientId", ticket.PatientID), zap.Error(err))
	} else {
		s.notifications.Notify(ctx, patient.ID,
			fmt.Sprintf("A report has been submitted for your ticket titled '%s.'", ticket.Title),
			domain.NotificationReportSubmitted,
			patient.FCMToken,
		)
	}

	return s.repo.GetByTicketID(ctx, ticketID)
}

func (s *ReportServiceImpl) GetByTicket(ctx context.Context, actorID int64, role domain.UserRole, ticketID int64) (*domain.Report, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if !canAccess(ticket, actorID, role) {
		return nil, domain.ErrUnauthorizedAccess
	}

	return s.repo.GetByTicketID(ctx, ticketID)
}
