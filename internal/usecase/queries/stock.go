package queries

import (
	"context"

	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// StockReadStore is the batched, non-locking availability source.
type StockReadStore interface {
	GetAvailable(ctx context.Context, optionIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// StockStoreFactory binds a read store to the connection a unit of work
// hands out, so the same store runs against pools and transactions alike.
type StockStoreFactory func(dbtx db.DBTX) StockReadStore

type StockQueries interface {
	GetAvailable(ctx context.Context, optionIDs []uuid.UUID) ([]AvailabilityView, error)
}

type stockQueriesImpl struct {
	uow       shared.UnitOfWork
	newStocks StockStoreFactory
}

func NewStockQueries(uow shared.UnitOfWork, newStocks StockStoreFactory) StockQueries {
	return &stockQueriesImpl{
		uow:       uow,
		newStocks: newStocks,
	}
}

// GetAvailable runs one batched lookup for the whole id set. Unknown ids
// report zero availability rather than failing the batch.
func (q *stockQueriesImpl) GetAvailable(ctx context.Context, optionIDs []uuid.UUID) ([]AvailabilityView, error) {
	var available map[uuid.UUID]int64
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		m, err := q.newStocks(dbtx).GetAvailable(ctx, optionIDs)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		available = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]AvailabilityView, len(optionIDs))
	for i, id := range optionIDs {
		views[i] = AvailabilityView{
			OptionID:  id,
			Available: available[id],
		}
	}
	return views, nil
}
