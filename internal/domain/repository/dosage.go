package repository

import (
	"context"

	"medialert/internal/domain/entity"
)

// DosageRepository defines the interface for dosage data operations.
type DosageRepository interface {
	FindByID(ctx context.Context, userID, id string) (*entity.Dosage, error)
	// FindByUserID retrieves a user's dosages, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Dosage, error)
	Create(ctx context.Context, dosage *entity.Dosage) error
	Update(ctx context.Context, dosage *entity.Dosage) error
	Delete(ctx context.Context, userID, id string) error
}
