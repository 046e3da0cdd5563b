package stock

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrMaxStockExceeded = errors.New("addition would exceed max stock")
	ErrInvalidReserved  = errors.New("reserved cannot exceed quantity")
)

// Record is the per-SKU stock counter. It is the unit guarded by one
// row lock: mutations go through Add after a FindForUpdate.
type Record struct {
	optionID    uuid.UUID
	quantity    int64
	reserved    int64
	maxQuantity int64
}

func NewRecord(optionID uuid.UUID, quantity, reserved, maxQuantity int64) (*Record, error) {
	if quantity < 0 || quantity > maxQuantity {
		return nil, ErrMaxStockExceeded
	}
	if reserved < 0 || reserved > quantity {
		return nil, ErrInvalidReserved
	}
	return &Record{
		optionID:    optionID,
		quantity:    quantity,
		reserved:    reserved,
		maxQuantity: maxQuantity,
	}, nil
}

// Add applies a bounded addition. The record is left unchanged when the
// addition is rejected.
func (r *Record) Add(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	// Compared as headroom so the check holds for additions near the
	// int64 range where quantity+r.quantity would wrap.
	if quantity > r.maxQuantity-r.quantity {
		return ErrMaxStockExceeded
	}
	r.quantity += quantity
	return nil
}

// Available is the quantity not held by reservations.
func (r *Record) Available() int64 {
	return r.quantity - r.reserved
}

func (r *Record) OptionID() uuid.UUID { return r.optionID }
func (r *Record) Quantity() int64     { return r.quantity }
func (r *Record) Reserved() int64     { return r.reserved }
func (r *Record) MaxQuantity() int64  { return r.maxQuantity }
