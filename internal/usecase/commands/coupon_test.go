//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commerce-core/internal/domain/coupon"
	"commerce-core/internal/infra"
	"commerce-core/internal/pkg/clock"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"
	sharedmock "commerce-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUoW     *sharedmock.MockUnitOfWork
	mockTx      *sharedmock.MockTx
	mockReads   *sharedmock.MockCommandReads
	mockCoupons *sharedmock.MockCouponRepository
	clock       *clock.MockClock
	cmds        commands.CouponCommands
}

func (s *CouponCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockCoupons = sharedmock.NewMockCouponRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Now())
	s.cmds = commands.NewCouponCommands(s.mockUoW, s.clock)

	s.mockTx.EXPECT().Coupons().Return(s.mockCoupons).AnyTimes()
	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
}

func (s *CouponCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponCommandsSuite(t *testing.T) {
	suite.Run(t, new(CouponCommandsTestSuite))
}

// expectWithin routes the unit-of-work callback onto the mocked Tx.
func (s *CouponCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *CouponCommandsTestSuite) TestCreateCoupon() {
	s.Run("definition and full ticket pool are written together", func() {
		s.expectWithin()
		s.mockCoupons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockCoupons.EXPECT().CreateTickets(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tickets []*coupon.Ticket) error {
				s.Len(tickets, 100)
				return nil
			}).Times(1)

		id, err := s.cmds.CreateCoupon(context.Background(), builder.NewCouponBuilder().BuildParams())
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("invalid definition never reaches the database", func() {
		params := builder.NewCouponBuilder().WithDiscountValue(101).BuildParams()

		_, err := s.cmds.CreateCoupon(context.Background(), params)
		s.Require().ErrorIs(err, errs.ErrInvalidCoupon)
	})

	s.Run("ticket insert failure rolls the definition back", func() {
		s.expectWithin()
		s.mockCoupons.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.mockCoupons.EXPECT().CreateTickets(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("copy failed", pgx.ErrTxClosed)).Times(1)

		_, err := s.cmds.CreateCoupon(context.Background(), builder.NewCouponBuilder().BuildParams())
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *CouponCommandsTestSuite) TestIssueCoupon() {
	userID := uuid.New()
	user := builder.NewUserBuilder().WithID(userID).BuildSnapshot()

	s.Run("issues one ticket inside the transaction", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		ticket := coupon.NewTicket(snap.ID)

		s.mockReads.EXPECT().CouponByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockReads.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(1)
		s.expectWithin()
		s.mockCoupons.EXPECT().FindTicketByUser(gomock.Any(), snap.ID, userID).
			Return(nil, notFoundErr()).Times(1)
		s.mockCoupons.EXPECT().SelectAvailableForUpdate(gomock.Any(), snap.ID).
			Return(ticket, nil).Times(1)
		s.mockCoupons.EXPECT().SaveTicket(gomock.Any(), ticket).Return(nil).Times(1)

		ticketID, err := s.cmds.IssueCoupon(context.Background(), snap.ID, userID)
		s.Require().NoError(err)
		s.Equal(ticket.ID(), ticketID)
		s.Equal(coupon.TicketIssued, ticket.Status())
	})

	s.Run("window checks run before any transaction", func() {
		now := s.clock.Now()

		notStarted := builder.NewCouponBuilder().AsNotStarted(now).BuildSnapshot()
		s.mockReads.EXPECT().CouponByID(gomock.Any(), notStarted.ID).Return(notStarted, nil).Times(1)
		_, err := s.cmds.IssueCoupon(context.Background(), notStarted.ID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponNotStarted)

		expired := builder.NewCouponBuilder().AsExpired(now).BuildSnapshot()
		s.mockReads.EXPECT().CouponByID(gomock.Any(), expired.ID).Return(expired, nil).Times(1)
		_, err = s.cmds.IssueCoupon(context.Background(), expired.ID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponExpired)
	})

	s.Run("unknown coupon", func() {
		couponID := uuid.New()
		s.mockReads.EXPECT().CouponByID(gomock.Any(), couponID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.cmds.IssueCoupon(context.Background(), couponID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponNotFound)
	})

	s.Run("existing ticket for the user short-circuits before selection", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockReads.EXPECT().CouponByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockReads.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(1)
		s.expectWithin()
		s.mockCoupons.EXPECT().FindTicketByUser(gomock.Any(), snap.ID, userID).
			Return(&shared.TicketSnapshot{ID: uuid.New(), CouponID: snap.ID}, nil).Times(1)

		_, err := s.cmds.IssueCoupon(context.Background(), snap.ID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponAlreadyIssued)
	})

	s.Run("empty pool maps to out of stock", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockReads.EXPECT().CouponByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockReads.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(1)
		s.expectWithin()
		s.mockCoupons.EXPECT().FindTicketByUser(gomock.Any(), snap.ID, userID).
			Return(nil, notFoundErr()).Times(1)
		s.mockCoupons.EXPECT().SelectAvailableForUpdate(gomock.Any(), snap.ID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.cmds.IssueCoupon(context.Background(), snap.ID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponOutOfStock)
	})

	s.Run("duplicate key on save maps to already issued", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		ticket := coupon.NewTicket(snap.ID)

		s.mockReads.EXPECT().CouponByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockReads.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(1)
		s.expectWithin()
		s.mockCoupons.EXPECT().FindTicketByUser(gomock.Any(), snap.ID, userID).
			Return(nil, notFoundErr()).Times(1)
		s.mockCoupons.EXPECT().SelectAvailableForUpdate(gomock.Any(), snap.ID).
			Return(ticket, nil).Times(1)
		s.mockCoupons.EXPECT().SaveTicket(gomock.Any(), ticket).
			Return(infra.WrapRepoErr("unique violation", pgx.ErrTxCommitRollback, infra.KindDuplicateKey)).Times(1)

		_, err := s.cmds.IssueCoupon(context.Background(), snap.ID, userID)
		s.Require().ErrorIs(err, errs.ErrCouponAlreadyIssued)
	})
}
