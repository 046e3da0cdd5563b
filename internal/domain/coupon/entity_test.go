//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"commerce-core/internal/domain/coupon"
	"commerce-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, coupon.DiscountPercent, actual.Discount().Type())
		assert.Equal(t, int64(10), actual.Discount().Value())
		assert.Equal(t, int32(100), actual.TotalQuantity())
	})

	t.Run("discount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown discount type",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("BOGO") },
				errIs:  coupon.ErrInvalidDiscountType,
			},
			{
				name:   "percent below minimum",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("PERCENT").WithDiscountValue(0) },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
			{
				name:   "percent at minimum",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("PERCENT").WithDiscountValue(1) },
			},
			{
				name:   "percent at maximum",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("PERCENT").WithDiscountValue(100) },
			},
			{
				name:   "percent above maximum",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("PERCENT").WithDiscountValue(101) },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
			{
				name:   "fixed amount above percentage cap",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("FIXED").WithDiscountValue(5000) },
			},
			{
				name:   "fixed amount below minimum",
				mutate: func(b *builder.CouponBuilder) { b.WithDiscountType("FIXED").WithDiscountValue(0) },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
		})
	})

	t.Run("validity window validation", func(t *testing.T) {
		now := time.Now()
		runCases(t, []testCase{
			{
				name: "validFrom equals validUntil",
				mutate: func(b *builder.CouponBuilder) {
					b.WithValidFrom(now).WithValidUntil(now)
				},
				errIs: coupon.ErrInvalidValidity,
			},
			{
				name: "validFrom after validUntil",
				mutate: func(b *builder.CouponBuilder) {
					b.WithValidFrom(now.Add(time.Hour)).WithValidUntil(now)
				},
				errIs: coupon.ErrInvalidValidity,
			},
			{
				name: "future window is creatable",
				mutate: func(b *builder.CouponBuilder) {
					b.WithValidFrom(now.Add(time.Hour)).WithValidUntil(now.Add(2 * time.Hour))
				},
			},
		})
	})

	t.Run("total quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.CouponBuilder) { b.WithTotalQuantity(0) },
				errIs:  coupon.ErrInvalidTotalQuantity,
			},
			{
				name:   "minimum quantity",
				mutate: func(b *builder.CouponBuilder) { b.WithTotalQuantity(coupon.MinTotalQuantity) },
			},
			{
				name:   "maximum quantity",
				mutate: func(b *builder.CouponBuilder) { b.WithTotalQuantity(coupon.MaxTotalQuantity) },
			},
			{
				name:   "above maximum quantity",
				mutate: func(b *builder.CouponBuilder) { b.WithTotalQuantity(coupon.MaxTotalQuantity + 1) },
				errIs:  coupon.ErrInvalidTotalQuantity,
			},
		})
	})

	t.Run("issuance window", func(t *testing.T) {
		now := time.Now()

		notStarted, err := builder.NewCouponBuilder().AsNotStarted(now).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, notStarted.ValidateIssuance(now), coupon.ErrNotStarted)

		expired, err := builder.NewCouponBuilder().AsExpired(now).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, expired.ValidateIssuance(now), coupon.ErrExpired)

		open, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, open.ValidateIssuance(now))

		// Boundaries are inclusive on both ends
		assert.NoError(t, open.ValidateIssuance(open.ValidFrom()))
		assert.NoError(t, open.ValidateIssuance(open.ValidUntil()))
	})
}

func TestDiscountApply(t *testing.T) {
	cases := []struct {
		name         string
		discountType coupon.DiscountType
		value        int64
		price        int64
		want         int64
	}{
		{"percent half off", coupon.DiscountPercent, 50, 2000, 1000},
		{"percent full off", coupon.DiscountPercent, 100, 2000, 0},
		{"fixed partial", coupon.DiscountFixed, 500, 2000, 1500},
		{"fixed exceeds price clamps to zero", coupon.DiscountFixed, 3000, 2000, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(c.discountType, c.value)
			require.NoError(t, err)
			assert.Equal(t, c.want, d.Apply(c.price))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
