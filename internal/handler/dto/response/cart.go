package response

import (
	"time"

	"commerce-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ProductOptionID uuid.UUID `json:"productOptionId"`
	ProductName     string    `json:"productName"`
	OptionName      string    `json:"optionName"`
	Price           int64     `json:"price"`
	Quantity        int32     `json:"quantity"`
	Available       int64     `json:"available"`
	TotalPrice      int64     `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AddToCartResponse struct {
	Item      CartItemResponse `json:"item"`
	IsNewItem bool             `json:"isNewItem"`
}

func FromCartItemDetail(detail queries.CartItemDetail) CartItemResponse {
	return CartItemResponse{
		ID:              detail.ID,
		ProductOptionID: detail.ProductOptionID,
		ProductName:     detail.ProductName,
		OptionName:      detail.OptionName,
		Price:           detail.Price,
		Quantity:        detail.Quantity,
		Available:       detail.Available,
		TotalPrice:      detail.TotalPrice,
		CreatedAt:       detail.CreatedAt,
		UpdatedAt:       detail.UpdatedAt,
	}
}

func FromCartItemDetails(details []queries.CartItemDetail) []CartItemResponse {
	out := make([]CartItemResponse, len(details))
	for i, d := range details {
		out[i] = FromCartItemDetail(d)
	}
	return out
}
