//go:build unit

package queries_test

import (
	"context"
	"testing"

	"commerce-core/internal/infra/db"
	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"
	"commerce-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartQueriesWith(stores queries.CartStores) queries.CartQueries {
	return queries.NewCartQueries(passthroughUoW{}, func(db.DBTX) queries.CartStores {
		return stores
	})
}

type stubCartReadStore struct {
	lines []queries.CartLine
}

func (s *stubCartReadStore) ListByUser(_ context.Context, _ uuid.UUID) ([]queries.CartLine, error) {
	return s.lines, nil
}

type stubProductReadStore struct {
	options map[uuid.UUID]shared.ProductOptionSnapshot
}

func (s *stubProductReadStore) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]shared.ProductOptionSnapshot, error) {
	out := make(map[uuid.UUID]shared.ProductOptionSnapshot)
	for _, id := range ids {
		if opt, ok := s.options[id]; ok {
			out[id] = opt
		}
	}
	return out, nil
}

func TestCartQueriesListCart(t *testing.T) {
	b := builder.NewCartBuilder()
	line := b.BuildLine()
	option := b.BuildProductSnapshot()

	t.Run("merges cart, catalog and availability per line", func(t *testing.T) {
		q := cartQueriesWith(queries.CartStores{
			Carts:    &stubCartReadStore{lines: []queries.CartLine{line}},
			Products: &stubProductReadStore{options: map[uuid.UUID]shared.ProductOptionSnapshot{option.ID: option}},
			Stocks:   &stubStockReadStore{available: map[uuid.UUID]int64{option.ID: 40}},
		})

		details, err := q.ListCart(context.Background(), b.UserID)
		require.NoError(t, err)
		require.Len(t, details, 1)

		detail := details[0]
		assert.Equal(t, line.ID, detail.ID)
		assert.Equal(t, "Classic Tee", detail.ProductName)
		assert.Equal(t, "Black / L", detail.OptionName)
		assert.Equal(t, int64(2500), detail.Price)
		assert.Equal(t, int32(2), detail.Quantity)
		assert.Equal(t, int64(40), detail.Available)
		assert.Equal(t, int64(5000), detail.TotalPrice)
	})

	t.Run("missing catalog entry fails the assembly", func(t *testing.T) {
		q := cartQueriesWith(queries.CartStores{
			Carts:    &stubCartReadStore{lines: []queries.CartLine{line}},
			Products: &stubProductReadStore{options: map[uuid.UUID]shared.ProductOptionSnapshot{}},
			Stocks:   &stubStockReadStore{available: map[uuid.UUID]int64{}},
		})

		_, err := q.ListCart(context.Background(), b.UserID)
		require.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("empty cart assembles to an empty slice", func(t *testing.T) {
		q := cartQueriesWith(queries.CartStores{
			Carts:    &stubCartReadStore{},
			Products: &stubProductReadStore{},
			Stocks:   &stubStockReadStore{},
		})

		details, err := q.ListCart(context.Background(), b.UserID)
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}
