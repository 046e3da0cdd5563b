package commands

import (
	"context"
	"time"

	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChargeResult struct {
	UserID          uuid.UUID
	PreviousBalance int64
	ChargeAmount    int64
	CurrentBalance  int64
	ChargedAt       time.Time
}

type BalanceCommands interface {
	ChargeBalance(ctx context.Context, userID uuid.UUID, amount int64) (*ChargeResult, error)
}

type balanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBalanceCommands(uow shared.UnitOfWork, clock clock.Clock) BalanceCommands {
	return &balanceCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// ChargeBalance serializes concurrent charges per user on the account row
// lock: read under lock, add, persist. The user existence check runs
// before the transaction so it never extends lock hold time.
func (b *balanceCommandsImpl) ChargeBalance(ctx context.Context, userID uuid.UUID, amount int64) (*ChargeResult, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidChargeAmount
	}

	if _, err := b.uow.CommandReads().UserByID(ctx, userID); err != nil {
		return nil, translateInfraErr(err, errs.ErrUserNotFound)
	}

	now := b.clock.Now()

	var result *ChargeResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Balances().EnsureAccount(ctx, userID); err != nil {
			return translateInfraErr(err, errs.ErrUserNotFound)
		}

		account, err := tx.Balances().FindForUpdate(ctx, userID)
		if err != nil {
			return translateInfraErr(err, errs.ErrUserNotFound)
		}

		previous, current, err := account.Charge(amount, now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidChargeAmount)
		}

		if err := tx.Balances().Save(ctx, account); err != nil {
			return translateInfraErr(err, errs.ErrUserNotFound)
		}

		result = &ChargeResult{
			UserID:          userID,
			PreviousBalance: previous,
			ChargeAmount:    amount,
			CurrentBalance:  current,
			ChargedAt:       now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
