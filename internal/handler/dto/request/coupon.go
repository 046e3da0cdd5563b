package request

import (
	"time"

	"commerce-core/internal/usecase/commands"
)

type CreateCouponRequest struct {
	DiscountType  string    `json:"discountType" binding:"required,oneof=PERCENT FIXED"`
	DiscountValue int64     `json:"discountValue" binding:"required,gte=1"`
	ValidFrom     time.Time `json:"validFrom" binding:"required"`
	ValidUntil    time.Time `json:"validUntil" binding:"required"`
	TotalQuantity int32     `json:"totalQuantity" binding:"required,gte=1,lte=10000"`
}

func (r CreateCouponRequest) ToParams() commands.CreateCouponParams {
	return commands.CreateCouponParams{
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		ValidFrom:     r.ValidFrom,
		ValidUntil:    r.ValidUntil,
		TotalQuantity: r.TotalQuantity,
	}
}
