package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinTotalQuantity = 1
	MaxTotalQuantity = 10000
)

var (
	ErrInvalidValidity      = errors.New("validFrom must be before validUntil")
	ErrInvalidTotalQuantity = errors.New("total quantity out of range")
	ErrNotStarted           = errors.New("coupon is not yet issuable")
	ErrExpired              = errors.New("coupon issuance window has closed")
)

// Coupon is the immutable definition of a ticket pool. All creation-time
// validation lives here so no ticket is ever written for a bad definition.
type Coupon struct {
	id            uuid.UUID
	discount      Discount
	validFrom     time.Time
	validUntil    time.Time
	totalQuantity int32
}

func NewCoupon(discountType DiscountType, discountValue int64, validFrom, validUntil time.Time, totalQuantity int32) (*Coupon, error) {
	discount, err := NewDiscount(discountType, discountValue)
	if err != nil {
		return nil, err
	}

	if !validFrom.Before(validUntil) {
		return nil, ErrInvalidValidity
	}
	if totalQuantity < MinTotalQuantity || totalQuantity > MaxTotalQuantity {
		return nil, ErrInvalidTotalQuantity
	}

	return &Coupon{
		id:            uuid.New(),
		discount:      discount,
		validFrom:     validFrom,
		validUntil:    validUntil,
		totalQuantity: totalQuantity,
	}, nil
}

// Reconstruct rebuilds a coupon previously validated at creation time.
func Reconstruct(id uuid.UUID, discountType DiscountType, discountValue int64, validFrom, validUntil time.Time, totalQuantity int32) *Coupon {
	return &Coupon{
		id:            id,
		discount:      Discount{discountType: discountType, value: discountValue},
		validFrom:     validFrom,
		validUntil:    validUntil,
		totalQuantity: totalQuantity,
	}
}

// ValidateIssuance checks the issuance window against the given time.
func (c *Coupon) ValidateIssuance(now time.Time) error {
	if now.Before(c.validFrom) {
		return ErrNotStarted
	}
	if now.After(c.validUntil) {
		return ErrExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) ValidFrom() time.Time { return c.validFrom }
func (c *Coupon) ValidUntil() time.Time { return c.validUntil }
func (c *Coupon) TotalQuantity() int32 { return c.totalQuantity }
