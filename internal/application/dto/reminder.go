package dto

import (
	"time"

	"medialert/internal/application/alert"
	"medialert/internal/domain/constant"
	"medialert/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID           string                `json:"id"`
	MedicineName string                `json:"medicineName"`
	Time         string                `json:"time"`
	Type         constant.ReminderType `json:"type"`
	Quantity     string                `json:"quantity,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		MedicineName: r.MedicineName,
		Time:         r.Time,
		Type:         r.Type,
		Quantity:     r.Quantity,
		CreatedAt:    r.CreatedAt,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// CreateReminderRequest is the DTO for creating a new reminder.
type CreateReminderRequest struct {
	MedicineName string `json:"medicineName" validate:"required,max=200"`
	Time         string `json:"time" validate:"required,clocktime"`
	Type         string `json:"type" validate:"required,oneof=Morning Afternoon Night Custom"`
	Quantity     string `json:"quantity" validate:"max=50"`
}

// AcknowledgeResponse reports the effects of dismissing a due reminder.
type AcknowledgeResponse struct {
	Reminder          ReminderResponse `json:"reminder"`
	InventoryUpdated  bool             `json:"inventoryUpdated"`
	RemainingQuantity *float64         `json:"remainingQuantity"`
	ReminderDeleted   bool             `json:"reminderDeleted"`
}

// ToAcknowledgeResponse converts a dismissal outcome.
func ToAcknowledgeResponse(o *alert.Outcome) AcknowledgeResponse {
	return AcknowledgeResponse{
		Reminder:          ToReminderResponse(&o.Reminder),
		InventoryUpdated:  o.InventoryUpdated,
		RemainingQuantity: o.RemainingQuantity,
		ReminderDeleted:   o.ReminderDeleted,
	}
}
