package gormdb

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"

	"gorm.io/gorm"
)

type refillRepository struct {
	db *gorm.DB
}

// NewRefillRepository creates a new instance of RefillRepository.
func NewRefillRepository(db *gorm.DB) repository.RefillRepository {
	return &refillRepository{db: db}
}

func (r *refillRepository) FindByID(ctx context.Context, userID, id string) (*entity.RefillItem, error) {
	var item entity.RefillItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("refill item %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find refill item %s: %w", id, err)
	}
	return &item, nil
}

func (r *refillRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.RefillItem, error) {
	var items []*entity.RefillItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find refill items for user %s: %w", userID, err)
	}
	return items, nil
}

// FindFirstByName returns the oldest item with the exact name.
func (r *refillRepository) FindFirstByName(ctx context.Context, userID, name string) (*entity.RefillItem, error) {
	var item entity.RefillItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).Order("created_at asc").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("refill item named %q not found: %w", name, err)
		}
		return nil, fmt.Errorf("failed to find refill item named %q: %w", name, err)
	}
	return &item, nil
}

func (r *refillRepository) Create(ctx context.Context, item *entity.RefillItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create refill item for user %s: %w", item.UserID, err)
	}
	return nil
}

func (r *refillRepository) Update(ctx context.Context, item *entity.RefillItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update refill item %s: %w", item.ID, err)
	}
	return nil
}

func (r *refillRepository) UpdateRemaining(ctx context.Context, userID, id string, remaining float64) error {
	res := r.db.WithContext(ctx).Model(&entity.RefillItem{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("remaining_quantity", remaining)
	if res.Error != nil {
		return fmt.Errorf("failed to update remaining quantity of %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("refill item %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *refillRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entity.RefillItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete refill item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("refill item %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
