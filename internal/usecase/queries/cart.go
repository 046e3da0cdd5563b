package queries

import (
	"context"

	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
}

type ProductReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductOptionSnapshot, error)
}

// CartStores groups the read stores one assembly touches, all bound to
// the same connection so the merged view reads one consistent snapshot.
type CartStores struct {
	Carts    CartReadStore
	Products ProductReadStore
	Stocks   StockReadStore
}

type CartStoreFactory func(dbtx db.DBTX) CartStores

type CartQueries interface {
	ListCart(ctx context.Context, userID uuid.UUID) ([]CartItemDetail, error)
	// AssembleDetails runs against the caller's connection, so a command
	// can build the response inside its own transaction.
	AssembleDetails(ctx context.Context, dbtx db.DBTX, lines []CartLine) ([]CartItemDetail, error)
}

type cartQueriesImpl struct {
	uow       shared.UnitOfWork
	newStores CartStoreFactory
}

func NewCartQueries(uow shared.UnitOfWork, newStores CartStoreFactory) CartQueries {
	return &cartQueriesImpl{
		uow:       uow,
		newStores: newStores,
	}
}

// ListCart assembles the cart inside one read-only transaction: lines,
// catalog fields and availability come from the same snapshot.
func (q *cartQueriesImpl) ListCart(ctx context.Context, userID uuid.UUID) ([]CartItemDetail, error) {
	var details []CartItemDetail
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		stores := q.newStores(dbtx)

		lines, err := stores.Carts.ListByUser(ctx, userID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		details, err = q.assemble(ctx, stores, lines)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (q *cartQueriesImpl) AssembleDetails(ctx context.Context, dbtx db.DBTX, lines []CartLine) ([]CartItemDetail, error) {
	return q.assemble(ctx, q.newStores(dbtx), lines)
}

// assemble merges cart lines with catalog and availability fields using
// one batched lookup per domain, after all reads complete. The merge is
// pure composition; it never writes into a source domain.
func (q *cartQueriesImpl) assemble(ctx context.Context, stores CartStores, lines []CartLine) ([]CartItemDetail, error) {
	if len(lines) == 0 {
		return []CartItemDetail{}, nil
	}

	optionIDs := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductOptionID]; ok {
			continue
		}
		seen[line.ProductOptionID] = struct{}{}
		optionIDs = append(optionIDs, line.ProductOptionID)
	}

	options, err := stores.Products.FindByIDs(ctx, optionIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	available, err := stores.Stocks.GetAvailable(ctx, optionIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	details := make([]CartItemDetail, 0, len(lines))
	for _, line := range lines {
		option, ok := options[line.ProductOptionID]
		if !ok {
			return nil, errs.ErrProductNotFound
		}

		details = append(details, CartItemDetail{
			ID:              line.ID,
			ProductOptionID: line.ProductOptionID,
			ProductName:     option.ProductName,
			OptionName:      option.OptionName,
			Price:           option.Price,
			Quantity:        line.Quantity,
			Available:       available[line.ProductOptionID],
			TotalPrice:      option.Price * int64(line.Quantity),
			CreatedAt:       line.CreatedAt,
			UpdatedAt:       line.UpdatedAt,
		})
	}

	return details, nil
}
