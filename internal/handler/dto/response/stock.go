package response

import (
	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddStockResponse struct {
	OptionID    uuid.UUID `json:"optionId"`
	NewQuantity int64     `json:"newQuantity"`
}

type AvailabilityResponse struct {
	OptionID  uuid.UUID `json:"optionId"`
	Available int64     `json:"available"`
}

func FromAvailabilityViews(views []queries.AvailabilityView) []AvailabilityResponse {
	out := make([]AvailabilityResponse, len(views))
	for i, v := range views {
		out[i] = AvailabilityResponse{
			OptionID:  v.OptionID,
			Available: v.Available,
		}
	}
	return out
}
