package commands

import (
	"context"
	"errors"

	"commerce-core/internal/domain/stock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type StockCommands interface {
	AddStock(ctx context.Context, optionID uuid.UUID, quantity int64) (int64, error)
}

type stockCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewStockCommands(uow shared.UnitOfWork) StockCommands {
	return &stockCommandsImpl{uow: uow}
}

// AddStock applies a bounded addition under the stock row's exclusive
// lock. A rejected addition leaves the row untouched because the whole
// unit of work rolls back.
func (s *stockCommandsImpl) AddStock(ctx context.Context, optionID uuid.UUID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	var newQuantity int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, err := tx.Stocks().FindForUpdate(ctx, optionID)
		if err != nil {
			return translateInfraErr(err, errs.ErrStockNotFound)
		}

		if err := record.Add(quantity); err != nil {
			if errors.Is(err, stock.ErrMaxStockExceeded) {
				return errs.Mark(err, errs.ErrMaxStockExceeded)
			}
			return errs.Mark(err, errs.ErrInvalidQuantity)
		}

		if err := tx.Stocks().Save(ctx, record); err != nil {
			return translateInfraErr(err, errs.ErrStockNotFound)
		}

		newQuantity = record.Quantity()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newQuantity, nil
}
