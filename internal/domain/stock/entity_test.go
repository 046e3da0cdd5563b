//go:build unit

package stock_test

import (
	"math"
	"testing"

	"commerce-core/internal/domain/stock"
	"commerce-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.StockBuilder)
		errIs  error
	}{
		{
			name:   "valid record",
			mutate: func(b *builder.StockBuilder) {},
		},
		{
			name:   "quantity above cap",
			mutate: func(b *builder.StockBuilder) { b.WithQuantity(101).WithMaxQuantity(100) },
			errIs:  stock.ErrMaxStockExceeded,
		},
		{
			name:   "negative quantity",
			mutate: func(b *builder.StockBuilder) { b.WithQuantity(-1) },
			errIs:  stock.ErrMaxStockExceeded,
		},
		{
			name:   "reserved above quantity",
			mutate: func(b *builder.StockBuilder) { b.WithQuantity(10).WithReserved(11) },
			errIs:  stock.ErrInvalidReserved,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewStockBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestRecordAdd(t *testing.T) {
	t.Run("addition within cap", func(t *testing.T) {
		record, err := builder.NewStockBuilder().WithQuantity(50).WithMaxQuantity(100).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, record.Add(30))
		assert.Equal(t, int64(80), record.Quantity())
	})

	t.Run("addition exactly reaching cap", func(t *testing.T) {
		record, err := builder.NewStockBuilder().WithQuantity(50).WithMaxQuantity(100).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, record.Add(50))
		assert.Equal(t, int64(100), record.Quantity())
	})

	t.Run("addition exceeding cap leaves record unchanged", func(t *testing.T) {
		record, err := builder.NewStockBuilder().WithQuantity(50).WithMaxQuantity(100).BuildDomain()
		require.NoError(t, err)

		err = record.Add(51)
		require.ErrorIs(t, err, stock.ErrMaxStockExceeded)
		assert.Equal(t, int64(50), record.Quantity())
	})

	t.Run("addition near the int64 range cannot wrap past the cap", func(t *testing.T) {
		record, err := builder.NewStockBuilder().WithQuantity(1).WithReserved(0).WithMaxQuantity(100).BuildDomain()
		require.NoError(t, err)

		err = record.Add(math.MaxInt64)
		require.ErrorIs(t, err, stock.ErrMaxStockExceeded)
		assert.Equal(t, int64(1), record.Quantity())
	})

	t.Run("non-positive addition rejected", func(t *testing.T) {
		record, err := builder.NewStockBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, record.Add(0), stock.ErrInvalidQuantity)
		require.ErrorIs(t, record.Add(-5), stock.ErrInvalidQuantity)
		assert.Equal(t, int64(50), record.Quantity())
	})
}

func TestRecordAvailable(t *testing.T) {
	record, err := builder.NewStockBuilder().WithQuantity(50).WithReserved(20).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, int64(30), record.Available())

	// Adding stock grows availability while reserved stays fixed
	require.NoError(t, record.Add(10))
	assert.Equal(t, int64(40), record.Available())
}
