package entity

import (
	"time"

	"medialert/internal/domain/constant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefillItem tracks the stock of one medication.
type RefillItem struct {
	ID                string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID            string    `gorm:"column:user_id;index;not null"`
	Name              string    `gorm:"column:name;index;not null"`
	TotalQuantity     float64   `gorm:"column:total_quantity;not null"`
	RemainingQuantity float64   `gorm:"column:remaining_quantity;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the RefillItem entity.
func (RefillItem) TableName() string {
	return "refills"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (r *RefillItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// LowStock reports whether the remaining stock is at or below the low-stock threshold.
func (r *RefillItem) LowStock() bool {
	if r.TotalQuantity <= 0 {
		return true
	}
	return r.RemainingQuantity/r.TotalQuantity <= constant.LowStockThreshold
}

// CanDecrement reports whether amount can be taken from stock.
func (r *RefillItem) CanDecrement(amount float64) bool {
	return amount > 0 && r.RemainingQuantity >= amount
}
