package readstore

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (r *CartReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.CartLine, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From("cart_items").
		Select("id", "user_id", "product_option_id", "quantity", "created_at", "updated_at").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.C("created_at").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build cart query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query cart items", err)
	}
	defer rows.Close()

	var lines []queries.CartLine
	for rows.Next() {
		var line queries.CartLine
		if err := rows.Scan(&line.ID, &line.UserID, &line.ProductOptionID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart item rows", err)
	}

	return lines, nil
}
