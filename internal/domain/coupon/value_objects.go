package coupon

import "errors"

var (
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
)

type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercent, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string { return string(t) }

type Discount struct {
	discountType DiscountType
	value        int64
}

// NewDiscount enforces the per-type value ranges: PERCENT within [1,100],
// FIXED at least 1 with no percentage cap.
func NewDiscount(discountType DiscountType, value int64) (Discount, error) {
	switch discountType {
	case DiscountPercent:
		if value < 1 || value > 100 {
			return Discount{}, ErrInvalidDiscountValue
		}
	case DiscountFixed:
		if value < 1 {
			return Discount{}, ErrInvalidDiscountValue
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{discountType: discountType, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.discountType }
func (d Discount) Value() int64       { return d.value }

// Apply returns the discounted price, never below zero.
func (d Discount) Apply(price int64) int64 {
	var discounted int64
	switch d.discountType {
	case DiscountPercent:
		discounted = price - price*d.value/100
	case DiscountFixed:
		discounted = price - d.value
	default:
		discounted = price
	}
	if discounted < 0 {
		return 0
	}
	return discounted
}
