//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"commerce-core/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketIssue(t *testing.T) {
	t.Run("available ticket is issued once", func(t *testing.T) {
		couponID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		ticket := coupon.NewTicket(couponID)
		require.Equal(t, coupon.TicketAvailable, ticket.Status())
		require.Nil(t, ticket.IssuedToUserID())

		err := ticket.Issue(userID, now)
		require.NoError(t, err)
		assert.Equal(t, coupon.TicketIssued, ticket.Status())
		require.NotNil(t, ticket.IssuedToUserID())
		assert.Equal(t, userID, *ticket.IssuedToUserID())
		require.NotNil(t, ticket.IssuedAt())
		assert.Equal(t, now, *ticket.IssuedAt())
	})

	t.Run("issued ticket cannot be issued again", func(t *testing.T) {
		ticket := coupon.NewTicket(uuid.New())
		firstUser := uuid.New()
		now := time.Now()

		require.NoError(t, ticket.Issue(firstUser, now))

		err := ticket.Issue(uuid.New(), now.Add(time.Second))
		require.ErrorIs(t, err, coupon.ErrTicketAlreadyIssued)
		assert.Equal(t, firstUser, *ticket.IssuedToUserID())
		assert.Equal(t, now, *ticket.IssuedAt())
	})
}

func TestNewTicketBatch(t *testing.T) {
	couponID := uuid.New()
	tickets := coupon.NewTicketBatch(couponID, 100)

	require.Len(t, tickets, 100)

	seen := make(map[uuid.UUID]struct{}, len(tickets))
	for _, ticket := range tickets {
		assert.Equal(t, couponID, ticket.CouponID())
		assert.Equal(t, coupon.TicketAvailable, ticket.Status())
		seen[ticket.ID()] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
