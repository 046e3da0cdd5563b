package request

import "github.com/google/uuid"

type AddToCartRequest struct {
	ProductOptionID uuid.UUID `json:"productOptionId" binding:"required"`
	Quantity        int32     `json:"quantity" binding:"required,gte=1"`
}
