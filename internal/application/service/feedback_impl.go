package service

import (
	"context"
	"fmt"

	"medialert/internal/application/dto"
	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	appErrors "medialert/internal/pkg/errors"
	"medialert/internal/pkg/logger"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	users        UserService
	log          logger.Logger
}

// NewFeedbackService creates a new instance of FeedbackService implementation.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, users UserService, log logger.Logger) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, users: users, log: log}
}

// Submit stores the message together with the sender's email.
func (s *feedbackService) Submit(ctx context.Context, userID string, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fb := &entity.Feedback{
		UserID:  userID,
		Email:   user.Email,
		Message: req.Message,
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		s.log.Error(fmt.Sprintf("Failed to store feedback for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Stored feedback %s from user %s", fb.ID, userID))
	return &dto.FeedbackResponse{ID: fb.ID, CreatedAt: fb.CreatedAt}, nil
}
