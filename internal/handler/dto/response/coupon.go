package response

import "github.com/google/uuid"

type CreateCouponResponse struct {
	CouponID uuid.UUID `json:"couponId"`
}

type IssueCouponResponse struct {
	TicketID uuid.UUID `json:"ticketId"`
}
