package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a message a user sent about the app.
type Feedback struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	Email     string    `gorm:"column:email;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Feedback entity.
func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
