package repository

import (
	"context"

	"commerce-core/internal/domain/stock"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StockRepository struct {
	db db.DBTX
}

func NewStockRepository(dbtx db.DBTX) *StockRepository {
	return &StockRepository{db: dbtx}
}

const findStockForUpdateSQL = `
SELECT option_id, quantity, reserved, max_quantity
FROM stocks
WHERE option_id = $1
FOR UPDATE`

// FindForUpdate takes the exclusive lock on the single stock row. The lock
// is held until the enclosing transaction commits or rolls back; distinct
// SKUs never contend.
func (r *StockRepository) FindForUpdate(ctx context.Context, optionID uuid.UUID) (*stock.Record, error) {
	var (
		id                              uuid.UUID
		quantity, reserved, maxQuantity int64
	)
	err := r.db.QueryRow(ctx, findStockForUpdateSQL, optionID).Scan(&id, &quantity, &reserved, &maxQuantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock stock", err)
	}

	record, err := stock.NewRecord(id, quantity, reserved, maxQuantity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct stock record", err)
	}
	return record, nil
}

const saveStockSQL = `
UPDATE stocks
SET quantity = $2, reserved = $3
WHERE option_id = $1`

func (r *StockRepository) Save(ctx context.Context, record *stock.Record) error {
	tag, err := r.db.Exec(ctx, saveStockSQL, record.OptionID(), record.Quantity(), record.Reserved())
	if err != nil {
		return infra.WrapRepoErr("failed to save stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock not found on save", nil, infra.KindNotFound)
	}
	return nil
}
