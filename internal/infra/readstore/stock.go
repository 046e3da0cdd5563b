package readstore

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
)

const dialectPostgres = "postgres"

type StockReadStore struct {
	db db.DBTX
}

func NewStockReadStore(dbtx db.DBTX) *StockReadStore {
	return &StockReadStore{db: dbtx}
}

// GetAvailable resolves availability for a whole id set in one query.
// Missing option ids are simply absent from the result map.
func (r *StockReadStore) GetAvailable(ctx context.Context, optionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(optionIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		From("stocks").
		Select(goqu.C("option_id"), goqu.L("quantity - reserved").As("available")).
		Where(goqu.C("option_id").In(uuidsToAny(optionIDs)...)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build availability query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	available := make(map[uuid.UUID]int64, len(optionIDs))
	for rows.Next() {
		var (
			optionID uuid.UUID
			amount   int64
		)
		if err := rows.Scan(&optionID, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		available[optionID] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}

	return available, nil
}

func uuidsToAny(ids []uuid.UUID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
