//go:build unit || e2e

package builder

import (
	domuser "commerce-core/internal/domain/user"
	"commerce-core/internal/pkg/password"
	"commerce-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "customer@example.com",
		Password: "Password123!",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(b.Password)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, hash), nil
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	hash, err := password.HashPassword(b.Password)
	if err != nil {
		panic("builder: hash password: " + err.Error())
	}
	return &shared.UserSnapshot{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: hash,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPassword(pw string) *UserBuilder {
	b.Password = pw
	return b
}
