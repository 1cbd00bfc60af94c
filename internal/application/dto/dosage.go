package dto

import (
	"time"

	"medialert/internal/domain/entity"
)

// DosageResponse is the DTO for a logged dosage.
type DosageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToDosageResponse converts an entity.Dosage to a DosageResponse DTO.
func ToDosageResponse(d *entity.Dosage) DosageResponse {
	return DosageResponse{
		ID:        d.ID,
		Name:      d.Name,
		Quantity:  d.Quantity,
		Time:      d.Time,
		CreatedAt: d.CreatedAt,
	}
}

// ToDosageResponseList converts a slice of dosages.
func ToDosageResponseList(dosages []*entity.Dosage) []DosageResponse {
	list := make([]DosageResponse, len(dosages))
	for i, d := range dosages {
		list[i] = ToDosageResponse(d)
	}
	return list
}

// DosageRequest is the DTO for creating or replacing a dosage.
type DosageRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Quantity string `json:"quantity" validate:"required,max=50"`
	Time     string `json:"time" validate:"required,max=50"`
}
