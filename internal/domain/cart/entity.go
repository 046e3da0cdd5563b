package cart

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("cart quantity must be at least 1")

// Item is one user's cart line for a product option. A repeat add
// increments the existing line instead of creating a second one.
type Item struct {
	id              uuid.UUID
	userID          uuid.UUID
	productOptionID uuid.UUID
	quantity        int32
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(userID, productOptionID uuid.UUID, quantity int32, now time.Time) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Item{
		id:              uuid.New(),
		userID:          userID,
		productOptionID: productOptionID,
		quantity:        quantity,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructItem(id, userID, productOptionID uuid.UUID, quantity int32, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:              id,
		userID:          userID,
		productOptionID: productOptionID,
		quantity:        quantity,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Item) AddQuantity(quantity int32, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > math.MaxInt32-i.quantity {
		return ErrInvalidQuantity
	}
	i.quantity += quantity
	i.updatedAt = now
	return nil
}

func (i *Item) ID() uuid.UUID              { return i.id }
func (i *Item) UserID() uuid.UUID          { return i.userID }
func (i *Item) ProductOptionID() uuid.UUID { return i.productOptionID }
func (i *Item) Quantity() int32            { return i.quantity }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }
func (i *Item) UpdatedAt() time.Time       { return i.updatedAt }
