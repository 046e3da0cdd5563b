package shared

import (
	"context"

	"commerce-core/internal/domain/balance"
	"commerce-core/internal/domain/cart"
	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/domain/stock"
	"commerce-core/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures. All writes of one use case commit together
	// or roll back together.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: non-locking validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Stocks() StockRepository
	Coupons() CouponRepository
	Balances() BalanceRepository
	Carts() CartRepository
	DB() db.DBTX
}

// CommandReads are existence/validation lookups that never take row locks.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ProductOptionByID(ctx context.Context, id uuid.UUID) (*ProductOptionSnapshot, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
}

// StockRepository guards one stock row at a time: FindForUpdate takes the
// exclusive row lock, Save persists the mutation made under that lock.
type StockRepository interface {
	FindForUpdate(ctx context.Context, optionID uuid.UUID) (*stock.Record, error)
	Save(ctx context.Context, record *stock.Record) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	CreateTickets(ctx context.Context, tickets []*coupon.Ticket) error
	FindTicketByUser(ctx context.Context, couponID, userID uuid.UUID) (*TicketSnapshot, error)
	// SelectAvailableForUpdate claims one AVAILABLE ticket, lowest id
	// first, skipping tickets other transactions hold locked.
	SelectAvailableForUpdate(ctx context.Context, couponID uuid.UUID) (*coupon.Ticket, error)
	SaveTicket(ctx context.Context, ticket *coupon.Ticket) error
}

type BalanceRepository interface {
	// EnsureAccount lazily creates the account row so the subsequent
	// FindForUpdate always has a row to lock.
	EnsureAccount(ctx context.Context, userID uuid.UUID) error
	FindForUpdate(ctx context.Context, userID uuid.UUID) (*balance.Account, error)
	Save(ctx context.Context, account *balance.Account) error
}

type CartRepository interface {
	FindByUserAndOptionForUpdate(ctx context.Context, userID, productOptionID uuid.UUID) (*cart.Item, error)
	Create(ctx context.Context, item *cart.Item) error
	Update(ctx context.Context, item *cart.Item) error
}
