package repository

import (
	"context"
	"time"

	"commerce-core/internal/domain/balance"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BalanceRepository struct {
	db db.DBTX
}

func NewBalanceRepository(dbtx db.DBTX) *BalanceRepository {
	return &BalanceRepository{db: dbtx}
}

const ensureAccountSQL = `
INSERT INTO balance_accounts (user_id, amount)
VALUES ($1, 0)
ON CONFLICT (user_id) DO NOTHING`

// EnsureAccount creates the row lazily so FindForUpdate always has a row
// to lock; a concurrent creator winning the insert is fine.
func (r *BalanceRepository) EnsureAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, ensureAccountSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to ensure balance account", err)
	}
	return nil
}

const findAccountForUpdateSQL = `
SELECT user_id, amount, updated_at
FROM balance_accounts
WHERE user_id = $1
FOR UPDATE`

func (r *BalanceRepository) FindForUpdate(ctx context.Context, userID uuid.UUID) (*balance.Account, error) {
	var (
		id        uuid.UUID
		amount    int64
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, findAccountForUpdateSQL, userID).Scan(&id, &amount, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("balance account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock balance account", err)
	}

	account, err := balance.NewAccount(id, amount, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct balance account", err)
	}
	return account, nil
}

const saveAccountSQL = `
UPDATE balance_accounts
SET amount = $2, updated_at = $3
WHERE user_id = $1`

func (r *BalanceRepository) Save(ctx context.Context, account *balance.Account) error {
	tag, err := r.db.Exec(ctx, saveAccountSQL, account.UserID(), account.Amount(), account.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to save balance account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("balance account not found on save", nil, infra.KindNotFound)
	}
	return nil
}
