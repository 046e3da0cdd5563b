package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTicketAlreadyIssued = errors.New("ticket already issued")

type TicketStatus string

const (
	TicketAvailable TicketStatus = "AVAILABLE"
	TicketIssued    TicketStatus = "ISSUED"
)

// Ticket is one claimable unit of a coupon pool. Status only ever moves
// AVAILABLE -> ISSUED.
type Ticket struct {
	id             uuid.UUID
	couponID       uuid.UUID
	status         TicketStatus
	issuedToUserID *uuid.UUID
	issuedAt       *time.Time
}

func NewTicket(couponID uuid.UUID) *Ticket {
	return &Ticket{
		id:       uuid.New(),
		couponID: couponID,
		status:   TicketAvailable,
	}
}

func ReconstructTicket(id, couponID uuid.UUID, status TicketStatus, issuedToUserID *uuid.UUID, issuedAt *time.Time) *Ticket {
	return &Ticket{
		id:             id,
		couponID:       couponID,
		status:         status,
		issuedToUserID: issuedToUserID,
		issuedAt:       issuedAt,
	}
}

// NewTicketBatch materializes the full pool for a definition.
func NewTicketBatch(couponID uuid.UUID, totalQuantity int32) []*Ticket {
	tickets := make([]*Ticket, totalQuantity)
	for i := range tickets {
		tickets[i] = NewTicket(couponID)
	}
	return tickets
}

// Issue flips the ticket to ISSUED bound to userID. The transition is
// one-way; issuing an ISSUED ticket is a defect in the selection step.
func (t *Ticket) Issue(userID uuid.UUID, now time.Time) error {
	if t.status != TicketAvailable {
		return ErrTicketAlreadyIssued
	}
	t.status = TicketIssued
	t.issuedToUserID = &userID
	t.issuedAt = &now
	return nil
}

func (t *Ticket) ID() uuid.UUID              { return t.id }
func (t *Ticket) CouponID() uuid.UUID        { return t.couponID }
func (t *Ticket) Status() TicketStatus       { return t.status }
func (t *Ticket) IssuedToUserID() *uuid.UUID { return t.issuedToUserID }
func (t *Ticket) IssuedAt() *time.Time       { return t.issuedAt }
