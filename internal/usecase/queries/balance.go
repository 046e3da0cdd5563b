package queries

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*shared.BalanceSnapshot, error)
}

type BalanceQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
}

type balanceQueriesImpl struct {
	balances BalanceReadStore
	reads    shared.CommandReads
}

func NewBalanceQueries(balances BalanceReadStore, reads shared.CommandReads) BalanceQueries {
	return &balanceQueriesImpl{
		balances: balances,
		reads:    reads,
	}
}

// GetBalance treats a missing account as a zero balance with no
// timestamp; only a missing user is an error.
func (q *balanceQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	if _, err := q.reads.UserByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap, err := q.balances.FindByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BalanceView{UserID: userID, Amount: 0}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	updatedAt := snap.UpdatedAt
	return &BalanceView{
		UserID:        snap.UserID,
		Amount:        snap.Amount,
		LastUpdatedAt: &updatedAt,
	}, nil
}
