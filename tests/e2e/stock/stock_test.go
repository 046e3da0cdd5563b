//go:build e2e

package stock_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

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
	addStockURL  = "/api/stock/%s/add"
	availableURL = "/api/stock/available?optionIds=%s"
)

type StockSuite struct {
	e2e.SharedSuite
}

func TestStockSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StockSuite))
}

func (s *StockSuite) TestAddStock() {
	s.Run("Normal case: Quantity grows and is visible in availability", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "warehouse@example.com")

		url := fmt.Sprintf(addStockURL, dbtest.SeedOptionTeeID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.AddStockRequest{Quantity: 30}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.AddStockResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, dbtest.SeedOptionTeeID, res.OptionID)
		require.Equal(t, dbtest.SeedStockQuantity+30, res.NewQuantity)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availableURL, dbtest.SeedOptionTeeID), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var avail []response.AvailabilityResponse
		_ = httptest.DecodeResponseBody(t, aw.Body, &avail)
		require.Len(t, avail, 1)
		require.Equal(t, dbtest.SeedStockQuantity+30, avail[0].Available)
	})

	s.Run("Error case: Breaching the cap leaves the row untouched", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "warehouse@example.com")

		url := fmt.Sprintf(addStockURL, dbtest.SeedOptionTeeID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.AddStockRequest{Quantity: 60}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "MAX_STOCK_EXCEEDED")

		quantity, reserved, maxQuantity := dbtest.GetStockRow(t, s.DB, dbtest.SeedOptionTeeID)
		require.Equal(t, dbtest.SeedStockQuantity, quantity)
		require.Equal(t, int64(0), reserved)
		require.Equal(t, dbtest.SeedStockMaxQuantity, maxQuantity)
	})

	s.Run("Error case: Unknown option is not found", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "warehouse@example.com")

		url := fmt.Sprintf(addStockURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.AddStockRequest{Quantity: 5}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "RESOURCE_NOT_FOUND")
	})

	s.Run("Concurrency: Parallel additions never lose an update", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "warehouse@example.com")

		const workers = 20
		const perWorker = int64(2)
		url := fmt.Sprintf(addStockURL, dbtest.SeedOptionTeeID)

		var wg sync.WaitGroup
		codes := make([]int, workers)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
					request.AddStockRequest{Quantity: perWorker}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		for i, code := range codes {
			require.Equal(t, http.StatusOK, code, "worker %d got unexpected status", i)
		}

		quantity, _, _ := dbtest.GetStockRow(t, s.DB, dbtest.SeedOptionTeeID)
		require.Equal(t, dbtest.SeedStockQuantity+int64(workers)*perWorker, quantity,
			"final quantity must equal the seed plus the exact sum of additions")
	})
}

func (s *StockSuite) TestGetAvailable() {
	s.Run("Normal case: Availability subtracts reservations", func() {
		t := s.T()

		_, err := s.DB.Exec(context.Background(),
			"UPDATE stocks SET reserved = 15 WHERE option_id = $1", dbtest.SeedOptionTeeID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availableURL, dbtest.SeedOptionTeeID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var avail []response.AvailabilityResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &avail)
		require.Len(t, avail, 1)
		require.Equal(t, dbtest.SeedStockQuantity-15, avail[0].Available)
	})

	s.Run("Normal case: Batch preserves request order and zeroes unknowns", func() {
		t := s.T()

		unknown := uuid.New()
		ids := fmt.Sprintf("%s,%s,%s", unknown, dbtest.SeedOptionMugID, dbtest.SeedOptionTeeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availableURL, ids), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var avail []response.AvailabilityResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &avail)
		require.Len(t, avail, 3)
		require.Equal(t, unknown, avail[0].OptionID)
		require.Equal(t, int64(0), avail[0].Available)
		require.Equal(t, dbtest.SeedOptionMugID, avail[1].OptionID)
		require.Equal(t, dbtest.SeedStockQuantity, avail[1].Available)
		require.Equal(t, dbtest.SeedOptionTeeID, avail[2].OptionID)
		require.Equal(t, dbtest.SeedStockQuantity, avail[2].Available)
	})

	s.Run("Error case: Missing optionIds parameter", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/stock/available", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
