package queries

import (
	"time"

	"github.com/google/uuid"
)

type BalanceView struct {
	UserID        uuid.UUID
	Amount        int64
	LastUpdatedAt *time.Time
}

type AvailabilityView struct {
	OptionID  uuid.UUID
	Available int64
}

// CartLine is the cart-owned slice of a cart row, before catalog and
// stock fields are merged in.
type CartLine struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ProductOptionID uuid.UUID
	Quantity        int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CartItemDetail merges cart, catalog and inventory fields per request.
// It is assembled read-only and never persisted.
type CartItemDetail struct {
	ID              uuid.UUID
	ProductOptionID uuid.UUID
	ProductName     string
	OptionName      string
	Price           int64
	Quantity        int32
	Available       int64
	TotalPrice      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
