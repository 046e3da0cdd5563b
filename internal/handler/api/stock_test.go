//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"commerce-core/internal/handler/api"
	resdto "commerce-core/internal/handler/dto/response"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/tests/common/builder"
	"commerce-core/tests/common/httptest"
	"commerce-core/tests/common/testutil"
	commandsmock "commerce-core/tests/mock/commands"
	queriesmock "commerce-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StockHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStockCommands
	mockQueries  *queriesmock.MockStockQueries
	handler      *api.StockHandler
}

func (s *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStockCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStockQueries(s.mockCtrl)
	s.handler = api.NewStockHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/stock/:optionId/add", authMiddleware, s.handler.AddStock)
	s.router.GET("/stock/available", s.handler.GetAvailable)
}

func (s *StockHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStockHandlerSuite(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}

func (s *StockHandlerTestSuite) TestAddStock() {
	optionID := uuid.New()
	url := "/stock/" + optionID.String() + "/add"
	reqBody := builder.NewStockBuilder().BuildAddRequestDTO(30)

	s.Run("success: returns new quantity", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), optionID, int64(30)).
			Return(int64(80), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AddStockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(optionID, body.OptionID)
		s.Equal(int64(80), body.NewQuantity)
	})

	s.Run("error: 400 on non-positive quantity", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	s.Run("error: 400 on malformed option id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/stock/not-a-uuid/add", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	s.Run("error: 404 when stock record is missing", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), optionID, int64(30)).
			Return(int64(0), errs.ErrStockNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RESOURCE_NOT_FOUND")
	})

	s.Run("error: 409 when addition exceeds the cap", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), optionID, int64(30)).
			Return(int64(0), errs.ErrMaxStockExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "MAX_STOCK_EXCEEDED")
	})

	s.Run("error: 503 on lock contention", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), optionID, int64(30)).
			Return(int64(0), errs.ErrLockContention).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "RETRY_LATER")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *StockHandlerTestSuite) TestGetAvailable() {
	first := uuid.New()
	second := uuid.New()

	s.Run("success: batched lookup preserves request order", func() {
		s.mockQueries.EXPECT().GetAvailable(gomock.Any(), []uuid.UUID{first, second}).
			Return([]queries.AvailabilityView{
				{OptionID: first, Available: 40},
				{OptionID: second, Available: 0},
			}, nil).Times(1)

		url := "/stock/available?optionIds=" + first.String() + "," + second.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(first, body[0].OptionID)
		s.Equal(int64(40), body[0].Available)
		s.Equal(second, body[1].OptionID)
		s.Equal(int64(0), body[1].Available)
	})

	s.Run("error: 400 when optionIds is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stock/available", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})

	s.Run("error: 400 on malformed id in the batch", func() {
		url := "/stock/available?optionIds=" + first.String() + ",oops"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})
}
