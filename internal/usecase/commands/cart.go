package commands

import (
	"context"

	"commerce-core/internal/domain/cart"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddToCartResult struct {
	Item      queries.CartItemDetail
	IsNewItem bool
}

type CartCommands interface {
	AddToCart(ctx context.Context, userID, productOptionID uuid.UUID, quantity int32) (*AddToCartResult, error)
}

type cartCommandsImpl struct {
	uow         shared.UnitOfWork
	cartQueries queries.CartQueries
	clock       clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, cartQueries queries.CartQueries, clock clock.Clock) CartCommands {
	return &cartCommandsImpl{
		uow:         uow,
		cartQueries: cartQueries,
		clock:       clock,
	}
}

// AddToCart runs existence checks outside any lock, then upserts the cart
// line and assembles the merged detail view in one unit of work.
func (c *cartCommandsImpl) AddToCart(ctx context.Context, userID, productOptionID uuid.UUID, quantity int32) (*AddToCartResult, error) {
	if quantity < 1 {
		return nil, errs.Mark(cart.ErrInvalidQuantity, errs.ErrInvalidQuantity)
	}

	if _, err := c.uow.CommandReads().UserByID(ctx, userID); err != nil {
		return nil, translateInfraErr(err, errs.ErrUserNotFound)
	}
	if _, err := c.uow.CommandReads().ProductOptionByID(ctx, productOptionID); err != nil {
		return nil, translateInfraErr(err, errs.ErrProductNotFound)
	}

	now := c.clock.Now()

	var (
		detail    queries.CartItemDetail
		isNewItem bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var line queries.CartLine

		existing, err := tx.Carts().FindByUserAndOptionForUpdate(ctx, userID, productOptionID)
		switch {
		case err == nil:
			if err := existing.AddQuantity(quantity, now); err != nil {
				return errs.Mark(err, errs.ErrInvalidQuantity)
			}
			if err := tx.Carts().Update(ctx, existing); err != nil {
				return translateInfraErr(err, errs.ErrProductNotFound)
			}
			line = toCartLine(existing)

		case infra.IsKind(err, infra.KindNotFound):
			item, err := cart.NewItem(userID, productOptionID, quantity, now)
			if err != nil {
				return errs.Mark(err, errs.ErrInvalidQuantity)
			}
			if err := tx.Carts().Create(ctx, item); err != nil {
				return translateInfraErr(err, errs.ErrProductNotFound)
			}
			line = toCartLine(item)
			isNewItem = true

		default:
			return translateInfraErr(err, errs.ErrProductNotFound)
		}

		// Assembling on the transaction's connection keeps the response
		// consistent with the write: a failed assembly rolls it back.
		details, err := c.cartQueries.AssembleDetails(ctx, tx.DB(), []queries.CartLine{line})
		if err != nil {
			return err
		}
		detail = details[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddToCartResult{
		Item:      detail,
		IsNewItem: isNewItem,
	}, nil
}

func toCartLine(item *cart.Item) queries.CartLine {
	return queries.CartLine{
		ID:              item.ID(),
		UserID:          item.UserID(),
		ProductOptionID: item.ProductOptionID(),
		Quantity:        item.Quantity(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}
