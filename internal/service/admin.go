package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
)

type AdminServiceImpl struct {
	userRepo      repository.UserRepository
	notifications NotificationService
	logger        *zap.Logger
}

func NewAdminService(userRepo repository.UserRepository, notifications NotificationService, logger *zap.Logger) *AdminServiceImpl {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *AdminServiceImpl) PendingApprovals(ctx context.Context) ([]domain.User, error) {
	patients, err := s.userRepo.ListByRoleAndStatus(ctx, domain.UserRolePatient, domain.UserStatusPending)
	if err != nil {
		return nil, err
	}

	doctors, err := s.userRepo.ListByRoleAndStatus(ctx, domain.UserRoleDoctor, domain.UserStatusPending)
	if err != nil {
		return nil, err
	}

	return append(patients, doctors...), nil
}

// SetRegistrationStatus accepts or rejects a pending registration and
// notifies the user about the decision.
func (s *AdminServiceImpl) SetRegistrationStatus(ctx context.Context, userID int64, status domain.UserStatus) error {
	if status != domain.UserStatusAccepted && status != domain.UserStatusRejected {
		return domain.ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return err
	}

	kind := domain.NotificationRegistrationAccepted
	if status == domain.UserStatusRejected {
		kind = domain.NotificationRegistrationRejected
	}

	s.notifications.Notify(ctx, userID,
		fmt.Sprintf("Your registration has been %s.", status),
		kind,
		user.FCMToken,
	)

	return nil
}

func (s *AdminServiceImpl) ListPatients(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRoleAndStatus(ctx, domain.UserRolePatient, domain.UserStatusAccepted)
}

func (s *AdminServiceImpl) ListDoctors(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRoleAndStatus(ctx, domain.UserRoleDoctor, domain.UserStatusAccepted)
}
