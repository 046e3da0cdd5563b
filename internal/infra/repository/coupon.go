package repository

import (
	"context"
	"time"

	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/infra"
	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/pgconv"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

const createCouponSQL = `
INSERT INTO coupons (id, discount_type, discount_value, valid_from, valid_until, total_quantity)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, createCouponSQL,
		c.ID(),
		c.Discount().Type().String(),
		c.Discount().Value(),
		c.ValidFrom(),
		c.ValidUntil(),
		c.TotalQuantity(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// CreateTickets bulk-inserts the whole pool via COPY; it runs in the same
// transaction as Create so all tickets exist or none do.
func (r *CouponRepository) CreateTickets(ctx context.Context, tickets []*coupon.Ticket) error {
	rows := make([][]any, len(tickets))
	for i, t := range tickets {
		rows[i] = []any{t.ID(), t.CouponID(), string(t.Status())}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"coupon_tickets"},
		[]string{"id", "coupon_id", "status"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon tickets", err)
	}
	return nil
}

const findTicketByUserSQL = `
SELECT id, coupon_id, status, issued_to_user_id, issued_at
FROM coupon_tickets
WHERE coupon_id = $1 AND issued_to_user_id = $2`

func (r *CouponRepository) FindTicketByUser(ctx context.Context, couponID, userID uuid.UUID) (*shared.TicketSnapshot, error) {
	snap := &shared.TicketSnapshot{}
	err := r.db.QueryRow(ctx, findTicketByUserSQL, couponID, userID).
		Scan(&snap.ID, &snap.CouponID, &snap.Status, &snap.IssuedToUserID, &snap.IssuedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found for user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by user", err)
	}
	return snap, nil
}

// Lowest id first keeps selection deterministic when uncontended;
// SKIP LOCKED lets N concurrent issuers claim N distinct tickets instead
// of queueing on the same row.
const selectAvailableTicketSQL = `
SELECT id, coupon_id, status, issued_to_user_id, issued_at
FROM coupon_tickets
WHERE coupon_id = $1 AND status = 'AVAILABLE'
ORDER BY id
LIMIT 1
FOR UPDATE SKIP LOCKED`

func (r *CouponRepository) SelectAvailableForUpdate(ctx context.Context, couponID uuid.UUID) (*coupon.Ticket, error) {
	var (
		id, cid        uuid.UUID
		status         string
		issuedToUserID *uuid.UUID
		issuedAt       *time.Time
	)
	err := r.db.QueryRow(ctx, selectAvailableTicketSQL, couponID).
		Scan(&id, &cid, &status, &issuedToUserID, &issuedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no available ticket", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to select available ticket", err)
	}

	return coupon.ReconstructTicket(id, cid, coupon.TicketStatus(status), issuedToUserID, issuedAt), nil
}

const saveTicketSQL = `
UPDATE coupon_tickets
SET status = $2, issued_to_user_id = $3, issued_at = $4
WHERE id = $1`

func (r *CouponRepository) SaveTicket(ctx context.Context, ticket *coupon.Ticket) error {
	tag, err := r.db.Exec(ctx, saveTicketSQL,
		ticket.ID(),
		string(ticket.Status()),
		ticket.IssuedToUserID(),
		pgconv.TimePtrToPgtype(ticket.IssuedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found on save", nil, infra.KindNotFound)
	}
	return nil
}
