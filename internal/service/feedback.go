package service

import (
	"context"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/pkg/validator"
)

type FeedbackServiceImpl struct {
	repo   repository.FeedbackRepository
	logger *zap.Logger
}

func NewFeedbackService(repo repository.FeedbackRepository, logger *zap.Logger) *FeedbackServiceImpl {
	return &FeedbackServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *FeedbackServiceImpl) Create(ctx context.Context, userID int64, dto domain.CreateFeedbackDTO) (int64, error) {
	if !validator.ValidateRating(dto.Rating) {
		return 0, domain.ErrInvalidInput
	}
	return s.repo.Create(ctx, userID, dto)
}

func (s *FeedbackServiceImpl) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *FeedbackServiceImpl) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.ListAll(ctx)
}
