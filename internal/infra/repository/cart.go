package repository

import (
	"context"
	"time"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

const findCartItemForUpdateSQL = `
SELECT id, user_id, product_option_id, quantity, created_at, updated_at
FROM cart_items
WHERE user_id = $1 AND product_option_id = $2
FOR UPDATE`

// FindByUserAndOptionForUpdate locks the user's existing line so repeat
// adds serialize per (user, option).
func (r *CartRepository) FindByUserAndOptionForUpdate(ctx context.Context, userID, productOptionID uuid.UUID) (*cart.Item, error) {
	var (
		id, uid, oid         uuid.UUID
		quantity             int32
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, findCartItemForUpdateSQL, userID, productOptionID).
		Scan(&id, &uid, &oid, &quantity, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock cart item", err)
	}

	return cart.ReconstructItem(id, uid, oid, quantity, createdAt, updatedAt), nil
}

const createCartItemSQL = `
INSERT INTO cart_items (id, user_id, product_option_id, quantity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CartRepository) Create(ctx context.Context, item *cart.Item) error {
	_, err := r.db.Exec(ctx, createCartItemSQL,
		item.ID(), item.UserID(), item.ProductOptionID(), item.Quantity(), item.CreatedAt(), item.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create cart item", err)
	}
	return nil
}

const updateCartItemSQL = `
UPDATE cart_items
SET quantity = $2, updated_at = $3
WHERE id = $1`

func (r *CartRepository) Update(ctx context.Context, item *cart.Item) error {
	tag, err := r.db.Exec(ctx, updateCartItemSQL, item.ID(), item.Quantity(), item.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found on update", nil, infra.KindNotFound)
	}
	return nil
}
