package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dosage records how much of a medicine the user takes and when.
type Dosage struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	Name      string    `gorm:"column:name;not null"`
	Quantity  string    `gorm:"column:quantity;not null"`
	Time      string    `gorm:"column:time;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Dosage entity.
func (Dosage) TableName() string {
	return "dosages"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (d *Dosage) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
