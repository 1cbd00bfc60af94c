package repository

import (
	"context"

	"medialert/internal/domain/entity"
)

// FeedbackRepository stores user feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByUserID(ctx context.Context, userID string) ([]*entity.Feedback, error)
}
