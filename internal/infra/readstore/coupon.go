package readstore

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const findCouponByIDSQL = `
SELECT id, discount_type, discount_value, valid_from, valid_until, total_quantity
FROM coupons
WHERE id = $1`

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	snap := &shared.CouponSnapshot{}
	err := r.db.QueryRow(ctx, findCouponByIDSQL, id).
		Scan(&snap.ID, &snap.DiscountType, &snap.DiscountValue, &snap.ValidFrom, &snap.ValidUntil, &snap.TotalQuantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return snap, nil
}
