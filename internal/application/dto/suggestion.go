package dto

// SuggestionRequest is the DTO for asking where to refill a medication.
type SuggestionRequest struct {
	Medication string `json:"medication" validate:"required,max=200"`
	Location   string `json:"location" validate:"required,max=200"`
}

// SuggestionResponse is the retailer recommendation.
type SuggestionResponse struct {
	Retailer string  `json:"retailer"`
	URL      string  `json:"url"`
	Price    float64 `json:"price"`
	Reason   string  `json:"reason"`
}
