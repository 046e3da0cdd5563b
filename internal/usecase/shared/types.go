package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep command usecases off the read-side query types
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

type ProductOptionSnapshot struct {
	ID          uuid.UUID
	ProductName string
	OptionName  string
	Price       int64
}

type CouponSnapshot struct {
	ID            uuid.UUID
	DiscountType  string
	DiscountValue int64
	ValidFrom     time.Time
	ValidUntil    time.Time
	TotalQuantity int32
}

type TicketSnapshot struct {
	ID             uuid.UUID
	CouponID       uuid.UUID
	Status         string
	IssuedToUserID *uuid.UUID
	IssuedAt       *time.Time
}

type BalanceSnapshot struct {
	UserID    uuid.UUID
	Amount    int64
	UpdatedAt time.Time
}
