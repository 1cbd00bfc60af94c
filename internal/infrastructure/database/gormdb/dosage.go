package gormdb

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"

	"gorm.io/gorm"
)

type dosageRepository struct {
	db *gorm.DB
}

// NewDosageRepository creates a new instance of DosageRepository.
func NewDosageRepository(db *gorm.DB) repository.DosageRepository {
	return &dosageRepository{db: db}
}

func (r *dosageRepository) FindByID(ctx context.Context, userID, id string) (*entity.Dosage, error) {
	var dosage entity.Dosage
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&dosage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dosage %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find dosage %s: %w", id, err)
	}
	return &dosage, nil
}

func (r *dosageRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Dosage, error) {
	var dosages []*entity.Dosage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&dosages).Error; err != nil {
		return nil, fmt.Errorf("failed to find dosages for user %s: %w", userID, err)
	}
	return dosages, nil
}

func (r *dosageRepository) Create(ctx context.Context, dosage *entity.Dosage) error {
	if err := r.db.WithContext(ctx).Create(dosage).Error; err != nil {
		return fmt.Errorf("failed to create dosage for user %s: %w", dosage.UserID, err)
	}
	return nil
}

func (r *dosageRepository) Update(ctx context.Context, dosage *entity.Dosage) error {
	if err := r.db.WithContext(ctx).Save(dosage).Error; err != nil {
		return fmt.Errorf("failed to update dosage %s: %w", dosage.ID, err)
	}
	return nil
}

func (r *dosageRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Dosage{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete dosage %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("dosage %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
