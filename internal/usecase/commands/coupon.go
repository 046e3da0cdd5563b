package commands

import (
	"context"
	"time"

	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCouponParams struct {
	DiscountType  string
	DiscountValue int64
	ValidFrom     time.Time
	ValidUntil    time.Time
	TotalQuantity int32
}

type CouponCommands interface {
	CreateCoupon(ctx context.Context, params CreateCouponParams) (uuid.UUID, error)
	IssueCoupon(ctx context.Context, couponID, userID uuid.UUID) (uuid.UUID, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// CreateCoupon validates the definition before any write; definition and
// ticket pool are inserted in one unit of work so all tickets exist or
// none do.
func (c *couponCommandsImpl) CreateCoupon(ctx context.Context, params CreateCouponParams) (uuid.UUID, error) {
	discountType, err := coupon.NewDiscountType(params.DiscountType)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	entity, err := coupon.NewCoupon(discountType, params.DiscountValue, params.ValidFrom, params.ValidUntil, params.TotalQuantity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Create(ctx, entity); err != nil {
			return translateInfraErr(err, errs.ErrCouponNotFound)
		}
		if err := tx.Coupons().CreateTickets(ctx, coupon.NewTicketBatch(entity.ID(), entity.TotalQuantity())); err != nil {
			return translateInfraErr(err, errs.ErrCouponNotFound)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}

// IssueCoupon issues at most one ticket per (coupon, user). Window and
// duplicate checks run before the lock; the select-and-flip on one
// AVAILABLE ticket is the serialization point.
func (c *couponCommandsImpl) IssueCoupon(ctx context.Context, couponID, userID uuid.UUID) (uuid.UUID, error) {
	now := c.clock.Now()

	snap, err := c.uow.CommandReads().CouponByID(ctx, couponID)
	if err != nil {
		return uuid.Nil, translateInfraErr(err, errs.ErrCouponNotFound)
	}

	definition := coupon.Reconstruct(
		snap.ID,
		coupon.DiscountType(snap.DiscountType),
		snap.DiscountValue,
		snap.ValidFrom,
		snap.ValidUntil,
		snap.TotalQuantity,
	)
	if err := definition.ValidateIssuance(now); err != nil {
		switch err {
		case coupon.ErrNotStarted:
			return uuid.Nil, errs.Mark(err, errs.ErrCouponNotStarted)
		default:
			return uuid.Nil, errs.Mark(err, errs.ErrCouponExpired)
		}
	}

	if _, err := c.uow.CommandReads().UserByID(ctx, userID); err != nil {
		return uuid.Nil, translateInfraErr(err, errs.ErrUserNotFound)
	}

	var ticketID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Coupons().FindTicketByUser(ctx, couponID, userID); err == nil {
			return errs.ErrCouponAlreadyIssued
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return translateInfraErr(err, errs.ErrCouponNotFound)
		}

		ticket, err := tx.Coupons().SelectAvailableForUpdate(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCouponOutOfStock)
			}
			return translateInfraErr(err, errs.ErrCouponOutOfStock)
		}

		if err := ticket.Issue(userID, now); err != nil {
			return errs.Mark(err, errs.ErrCouponAlreadyIssued)
		}

		if err := tx.Coupons().SaveTicket(ctx, ticket); err != nil {
			// The partial unique index catches a racing issuance for the
			// same (coupon, user) pair at commit level.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrCouponAlreadyIssued)
			}
			return translateInfraErr(err, errs.ErrCouponNotFound)
		}

		ticketID = ticket.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return ticketID, nil
}
