//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"commerce-core/internal/handler/api"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/pkg/errs"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/httptest"
	"commerce-core/tests/common/testutil"
	commandsmock "commerce-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	handler      *api.CouponHandler
	userID       uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/coupons", authMiddleware, s.handler.Create)
	s.router.POST("/coupons/:couponId/issue", authMiddleware, s.handler.Issue)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/coupons"
	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()
	couponID := uuid.New()

	s.Run("success: returns 201 with the new coupon id", func() {
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
			Return(couponID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(couponID, body.CouponID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "unknown discount type", mutate: testutil.Field("discountType", "BOGO")},
			{name: "missing discount value", mutate: testutil.Field("discountValue", nil)},
			{name: "zero total quantity", mutate: testutil.Field("totalQuantity", 0)},
			{name: "total quantity above cap", mutate: testutil.Field("totalQuantity", 10001)},
			{name: "missing validFrom", mutate: testutil.Field("validFrom", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
			})
		}
	})

	s.Run("error: 400 INVALID_COUPON when domain validation rejects", func() {
		s.mockCommands.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrInvalidCoupon).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_COUPON")
	})
}

func (s *CouponHandlerTestSuite) TestIssue() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/issue"
	ticketID := uuid.New()

	s.Run("success: returns the issued ticket id", func() {
		s.mockCommands.EXPECT().IssueCoupon(gomock.Any(), couponID, s.userID).
			Return(ticketID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.IssueCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(ticketID, body.TicketID)
	})

	s.Run("error: 400 on malformed coupon id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/nope/issue", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	s.Run("error: domain failures map to boundary codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			code       string
		}{
			{name: "unknown coupon", err: errs.ErrCouponNotFound, expectCode: http.StatusNotFound, code: "RESOURCE_NOT_FOUND"},
			{name: "window not open", err: errs.ErrCouponNotStarted, expectCode: http.StatusBadRequest, code: "COUPON_NOT_STARTED"},
			{name: "window closed", err: errs.ErrCouponExpired, expectCode: http.StatusBadRequest, code: "COUPON_EXPIRED"},
			{name: "already issued", err: errs.ErrCouponAlreadyIssued, expectCode: http.StatusConflict, code: "ALREADY_ISSUED"},
			{name: "pool exhausted", err: errs.ErrCouponOutOfStock, expectCode: http.StatusConflict, code: "OUT_OF_STOCK"},
			{name: "lock contention", err: errs.ErrLockContention, expectCode: http.StatusServiceUnavailable, code: "RETRY_LATER"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueCoupon(gomock.Any(), couponID, s.userID).
					Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.code)
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
