//go:build unit || e2e

package builder

import (
	domstock "commerce-core/internal/domain/stock"
	reqdto "commerce-core/internal/handler/dto/request"

	"github.com/google/uuid"
)

type StockBuilder struct {
	OptionID    uuid.UUID
	Quantity    int64
	Reserved    int64
	MaxQuantity int64
}

func NewStockBuilder() *StockBuilder {
	return &StockBuilder{
		OptionID:    uuid.New(),
		Quantity:    50,
		Reserved:    0,
		MaxQuantity: 100,
	}
}

func (b *StockBuilder) With(mutate func(*StockBuilder)) *StockBuilder {
	mutate(b)
	return b
}

func (b *StockBuilder) BuildDomain() (*domstock.Record, error) {
	return domstock.NewRecord(b.OptionID, b.Quantity, b.Reserved, b.MaxQuantity)
}

func (b *StockBuilder) BuildAddRequestDTO(quantity int64) reqdto.AddStockRequest {
	return reqdto.AddStockRequest{Quantity: quantity}
}

// Fluent builder methods
func (b *StockBuilder) WithOptionID(id uuid.UUID) *StockBuilder {
	b.OptionID = id
	return b
}

func (b *StockBuilder) WithQuantity(q int64) *StockBuilder {
	b.Quantity = q
	return b
}

func (b *StockBuilder) WithReserved(r int64) *StockBuilder {
	b.Reserved = r
	return b
}

func (b *StockBuilder) WithMaxQuantity(m int64) *StockBuilder {
	b.MaxQuantity = m
	return b
}

func (b *StockBuilder) AsFull() *StockBuilder {
	b.Quantity = b.MaxQuantity
	return b
}
