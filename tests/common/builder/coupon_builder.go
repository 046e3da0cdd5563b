//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "commerce-core/internal/domain/coupon"
	reqdto "commerce-core/internal/handler/dto/request"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	DiscountType  string
	DiscountValue int64
	ValidFrom     time.Time
	ValidUntil    time.Time
	TotalQuantity int32
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		DiscountType:  "PERCENT",
		DiscountValue: 10,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(24 * time.Hour),
		TotalQuantity: 100,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		domcoupon.DiscountType(b.DiscountType),
		b.DiscountValue,
		b.ValidFrom,
		b.ValidUntil,
		b.TotalQuantity,
	)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:            uuid.New(),
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		ValidFrom:     b.ValidFrom,
		ValidUntil:    b.ValidUntil,
		TotalQuantity: b.TotalQuantity,
	}
}

func (b *CouponBuilder) BuildParams() commands.CreateCouponParams {
	return commands.CreateCouponParams{
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		ValidFrom:     b.ValidFrom,
		ValidUntil:    b.ValidUntil,
		TotalQuantity: b.TotalQuantity,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		DiscountType:  b.DiscountType,
		DiscountValue: b.DiscountValue,
		ValidFrom:     b.ValidFrom,
		ValidUntil:    b.ValidUntil,
		TotalQuantity: b.TotalQuantity,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithDiscountType(t string) *CouponBuilder {
	b.DiscountType = t
	return b
}

func (b *CouponBuilder) WithDiscountValue(v int64) *CouponBuilder {
	b.DiscountValue = v
	return b
}

func (b *CouponBuilder) WithValidFrom(t time.Time) *CouponBuilder {
	b.ValidFrom = t
	return b
}

func (b *CouponBuilder) WithValidUntil(t time.Time) *CouponBuilder {
	b.ValidUntil = t
	return b
}

func (b *CouponBuilder) WithTotalQuantity(q int32) *CouponBuilder {
	b.TotalQuantity = q
	return b
}

func (b *CouponBuilder) AsNotStarted(now time.Time) *CouponBuilder {
	b.ValidFrom = now.Add(time.Hour)
	b.ValidUntil = now.Add(48 * time.Hour)
	return b
}

func (b *CouponBuilder) AsExpired(now time.Time) *CouponBuilder {
	b.ValidFrom = now.Add(-48 * time.Hour)
	b.ValidUntil = now.Add(-time.Hour)
	return b
}
