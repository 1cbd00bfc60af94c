package dto

import (
	"time"

	"medialert/internal/domain/entity"
)

// RefillResponse is the DTO for an inventory item.
type RefillResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TotalQuantity     float64   `json:"totalQuantity"`
	RemainingQuantity float64   `json:"remainingQuantity"`
	LowStock          bool      `json:"lowStock"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToRefillResponse converts an entity.RefillItem to a RefillResponse DTO.
func ToRefillResponse(item *entity.RefillItem) RefillResponse {
	return RefillResponse{
		ID:                item.ID,
		Name:              item.Name,
		TotalQuantity:     item.TotalQuantity,
		RemainingQuantity: item.RemainingQuantity,
		LowStock:          item.LowStock(),
		CreatedAt:         item.CreatedAt,
	}
}

// ToRefillResponseList converts a slice of items.
func ToRefillResponseList(items []*entity.RefillItem) []RefillResponse {
	list := make([]RefillResponse, len(items))
	for i, item := range items {
		list[i] = ToRefillResponse(item)
	}
	return list
}

// RefillRequest is the DTO for creating or replacing an inventory item.
type RefillRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	TotalQuantity     float64 `json:"totalQuantity" validate:"gte=1"`
	RemainingQuantity float64 `json:"remainingQuantity" validate:"gte=0"`
}
