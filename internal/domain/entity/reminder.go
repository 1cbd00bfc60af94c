package entity

import (
	"fmt"
	"time"

	"medialert/internal/domain/constant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a daily medication alert at a fixed "HH:MM" time.
type Reminder struct {
	ID           string                `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID       string                `gorm:"column:user_id;index;not null"`
	MedicineName string                `gorm:"column:medicine_name;not null"`
	Time         string                `gorm:"column:time;type:varchar(5);index;not null"` // zero-padded HH:MM
	Type         constant.ReminderType `gorm:"column:type;type:varchar(16);not null"`
	Quantity     string                `gorm:"column:quantity"` // free-form dose, e.g. "1/2"
	CreatedAt    time.Time             `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// AlertText is the short message sent to outbound channels when the reminder is due.
func (r Reminder) AlertText() string {
	if r.Quantity == "" {
		return fmt.Sprintf("⏰ %s: time to take %s.", r.Time, r.MedicineName)
	}
	return fmt.Sprintf("⏰ %s: time to take %s (%s).", r.Time, r.MedicineName, r.Quantity)
}
