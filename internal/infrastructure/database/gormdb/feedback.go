package gormdb

import (
	"context"
	"fmt"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"

	"gorm.io/gorm"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to store feedback for user %s: %w", feedback.UserID, err)
	}
	return nil
}

func (r *feedbackRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Feedback, error) {
	var items []*entity.Feedback
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback for user %s: %w", userID, err)
	}
	return items, nil
}
