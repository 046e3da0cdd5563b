package readstore

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const findProductOptionSQL = `
SELECT id, product_name, option_name, price
FROM product_options
WHERE id = $1`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProductOptionSnapshot, error) {
	snap := &shared.ProductOptionSnapshot{}
	err := r.db.QueryRow(ctx, findProductOptionSQL, id).
		Scan(&snap.ID, &snap.ProductName, &snap.OptionName, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product option", err)
	}
	return snap, nil
}

// FindByIDs is the batched catalog lookup backing the cart detail merge.
func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductOptionSnapshot, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]shared.ProductOptionSnapshot{}, nil
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		From("product_options").
		Select("id", "product_name", "option_name", "price").
		Where(goqu.C("id").In(uuidsToAny(ids)...)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build product options query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query product options", err)
	}
	defer rows.Close()

	options := make(map[uuid.UUID]shared.ProductOptionSnapshot, len(ids))
	for rows.Next() {
		var snap shared.ProductOptionSnapshot
		if err := rows.Scan(&snap.ID, &snap.ProductName, &snap.OptionName, &snap.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product option row", err)
		}
		options[snap.ID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product option rows", err)
	}

	return options, nil
}
