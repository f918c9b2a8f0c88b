package service

import (
	"context"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/pkg/validator"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) (*domain.User, error) {
	if dto.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}

	if dto.Email != nil && !validator.ValidateEmail(*dto.Email) {
		return nil, domain.ErrInvalidInput
	}
	if dto.PatientData != nil && dto.PatientData.BloodGroup != "" &&
		!validator.ValidateBloodGroup(dto.PatientData.BloodGroup) {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *UserServiceImpl) UpdateFCMToken(ctx context.Context, id int64, token string) error {
	return s.repo.UpdateFCMToken(ctx, id, token)
}
