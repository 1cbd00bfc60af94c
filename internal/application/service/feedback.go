package service

import (
	"context"

	"medialert/internal/application/dto"
)

// FeedbackService stores user feedback.
type FeedbackService interface {
	Submit(ctx context.Context, userID string, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}
