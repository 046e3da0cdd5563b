package readstore

import (
	"context"

	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceReadStore struct {
	db db.DBTX
}

func NewBalanceReadStore(dbtx db.DBTX) *BalanceReadStore {
	return &BalanceReadStore{db: dbtx}
}

const findBalanceByUserSQL = `
SELECT user_id, amount, updated_at
FROM balance_accounts
WHERE user_id = $1`

// FindByUser reports NOT_FOUND for absent accounts; the query layer turns
// that into a zero balance rather than an error.
func (r *BalanceReadStore) FindByUser(ctx context.Context, userID uuid.UUID) (*shared.BalanceSnapshot, error) {
	snap := &shared.BalanceSnapshot{}
	err := r.db.QueryRow(ctx, findBalanceByUserSQL, userID).Scan(&snap.UserID, &snap.Amount, &snap.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("balance account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find balance account", err)
	}
	return snap, nil
}
