package balance

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidChargeAmount = errors.New("charge amount must be positive")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
)

// Account holds one user's balance. Charges must run under the account
// row lock so concurrent charges serialize instead of losing updates.
type Account struct {
	userID    uuid.UUID
	amount    int64
	updatedAt time.Time
}

func NewAccount(userID uuid.UUID, amount int64, updatedAt time.Time) (*Account, error) {
	if amount < 0 {
		return nil, ErrNegativeBalance
	}
	return &Account{
		userID:    userID,
		amount:    amount,
		updatedAt: updatedAt,
	}, nil
}

// Charge applies an additive charge and reports the pre/post pair.
func (a *Account) Charge(amount int64, now time.Time) (previous, current int64, err error) {
	if amount <= 0 {
		return 0, 0, ErrInvalidChargeAmount
	}
	if amount > math.MaxInt64-a.amount {
		return 0, 0, ErrInvalidChargeAmount
	}
	previous = a.amount
	a.amount += amount
	a.updatedAt = now
	return previous, a.amount, nil
}

func (a *Account) UserID() uuid.UUID    { return a.userID }
func (a *Account) Amount() int64        { return a.amount }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }
