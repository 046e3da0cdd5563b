//go:build e2e

package coupon_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"commerce-core/internal/handler/dto/request"
	"commerce-core/internal/handler/dto/response"
	"commerce-core/tests/common/authtest"
	"commerce-core/tests/common/dbtest"
	"commerce-core/tests/common/httptest"
	"commerce-core/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	couponsURL = "/api/coupons"
	issueURL   = "/api/coupons/%s/issue"
)

type CouponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

func validCouponRequest() request.CreateCouponRequest {
	now := time.Now()
	return request.CreateCouponRequest{
		DiscountType:  "PERCENT",
		DiscountValue: 10,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(24 * time.Hour),
		TotalQuantity: 20,
	}
}

func (s *CouponSuite) TestCreateCoupon() {
	s.Run("Normal case: Definition and full ticket pool appear together", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "marketing@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, validCouponRequest(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.CreateCouponResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEqual(t, uuid.Nil, res.CouponID)

		require.Equal(t, 20, dbtest.CountAvailableTickets(t, s.DB, res.CouponID))
	})

	s.Run("Error case: Inverted window is rejected and nothing is stored", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "marketing@example.com")

		req := validCouponRequest()
		req.ValidFrom, req.ValidUntil = req.ValidUntil, req.ValidFrom

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "INVALID_COUPON")

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM coupons").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

func (s *CouponSuite) TestIssueCoupon() {
	now := time.Now()

	s.Run("Normal case: Ticket is issued and the pool shrinks by one", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com")
		couponID := dbtest.CreateTestCoupon(t, s.DB, now.Add(-time.Hour), now.Add(time.Hour), 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(issueURL, couponID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.IssueCouponResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEqual(t, uuid.Nil, res.TicketID)

		require.Equal(t, 4, dbtest.CountAvailableTickets(t, s.DB, couponID))
	})

	s.Run("Error case: Second issue for the same user is a conflict", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com")
		couponID := dbtest.CreateTestCoupon(t, s.DB, now.Add(-time.Hour), now.Add(time.Hour), 5)
		url := fmt.Sprintf(issueURL, couponID)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "ALREADY_ISSUED")

		// The first grant survives the rejected retry.
		require.Equal(t, 4, dbtest.CountAvailableTickets(t, s.DB, couponID))
	})

	s.Run("Error case: Window boundaries", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com")

		notStarted := dbtest.CreateTestCoupon(t, s.DB, now.Add(time.Hour), now.Add(2*time.Hour), 5)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(issueURL, notStarted), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "COUPON_NOT_STARTED")

		expired := dbtest.CreateTestCoupon(t, s.DB, now.Add(-2*time.Hour), now.Add(-time.Hour), 5)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(issueURL, expired), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "COUPON_EXPIRED")
	})

	s.Run("Error case: Unknown coupon is not found", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(issueURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "RESOURCE_NOT_FOUND")
	})

	s.Run("Concurrency: Pool of 100 against 150 issuers never oversells", func() {
		t := s.T()

		const poolSize = 100
		const issuers = 150

		couponID := dbtest.CreateTestCoupon(t, s.DB, now.Add(-time.Hour), now.Add(time.Hour), poolSize)
		url := fmt.Sprintf(issueURL, couponID)

		tokens := make([]string, issuers)
		for i := range issuers {
			userID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("issuer%03d@example.com", i))
			tokens[i] = authtest.GenerateToken(t, s.Config.JWT, userID)
		}

		type outcome struct {
			code     int
			errCode  string
			ticketID uuid.UUID
		}
		results := make([]outcome, issuers)

		var wg sync.WaitGroup
		for i := range issuers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, tokens[i])
				results[i].code = w.Code
				switch w.Code {
				case http.StatusOK:
					var res response.IssueCouponResponse
					_ = httptest.DecodeResponseBody(t, w.Body, &res)
					results[i].ticketID = res.TicketID
				default:
					var envelope struct {
						Error struct {
							Code string `json:"code"`
						} `json:"error"`
					}
					_ = httptest.DecodeResponseBody(t, w.Body, &envelope)
					results[i].errCode = envelope.Error.Code
				}
			}()
		}
		wg.Wait()

		issued := map[uuid.UUID]struct{}{}
		var outOfStock int
		for i, r := range results {
			switch r.code {
			case http.StatusOK:
				_, dup := issued[r.ticketID]
				require.False(t, dup, "ticket %s issued twice", r.ticketID)
				issued[r.ticketID] = struct{}{}
			case http.StatusConflict:
				require.Equal(t, "OUT_OF_STOCK", r.errCode, "issuer %d", i)
				outOfStock++
			default:
				t.Fatalf("issuer %d got unexpected status %d", i, r.code)
			}
		}

		require.Len(t, issued, poolSize, "every ticket must be granted exactly once")
		require.Equal(t, issuers-poolSize, outOfStock)
		require.Zero(t, dbtest.CountAvailableTickets(t, s.DB, couponID))
	})
}
