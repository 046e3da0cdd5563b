//go:build unit || e2e

package builder

import (
	"time"

	domcart "commerce-core/internal/domain/cart"
	reqdto "commerce-core/internal/handler/dto/request"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartBuilder struct {
	UserID          uuid.UUID
	ProductOptionID uuid.UUID
	ProductName     string
	OptionName      string
	Price           int64
	Quantity        int32
	Available       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewCartBuilder() *CartBuilder {
	now := time.Now()
	return &CartBuilder{
		UserID:          uuid.New(),
		ProductOptionID: uuid.New(),
		ProductName:     "Classic Tee",
		OptionName:      "Black / L",
		Price:           2500,
		Quantity:        2,
		Available:       40,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildDomain() (*domcart.Item, error) {
	return domcart.NewItem(b.UserID, b.ProductOptionID, b.Quantity, b.CreatedAt)
}

func (b *CartBuilder) BuildLine() queries.CartLine {
	return queries.CartLine{
		ID:              uuid.New(),
		UserID:          b.UserID,
		ProductOptionID: b.ProductOptionID,
		Quantity:        b.Quantity,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *CartBuilder) BuildProductSnapshot() shared.ProductOptionSnapshot {
	return shared.ProductOptionSnapshot{
		ID:          b.ProductOptionID,
		ProductName: b.ProductName,
		OptionName:  b.OptionName,
		Price:       b.Price,
	}
}

func (b *CartBuilder) BuildAddRequestDTO() reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{
		ProductOptionID: b.ProductOptionID,
		Quantity:        b.Quantity,
	}
}

// Fluent builder methods
func (b *CartBuilder) WithUserID(id uuid.UUID) *CartBuilder {
	b.UserID = id
	return b
}

func (b *CartBuilder) WithProductOptionID(id uuid.UUID) *CartBuilder {
	b.ProductOptionID = id
	return b
}

func (b *CartBuilder) WithQuantity(q int32) *CartBuilder {
	b.Quantity = q
	return b
}

func (b *CartBuilder) WithPrice(p int64) *CartBuilder {
	b.Price = p
	return b
}

func (b *CartBuilder) WithAvailable(a int64) *CartBuilder {
	b.Available = a
	return b
}
