package commands

import (
	"context"

	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/pkg/jwt"
	"commerce-core/internal/pkg/password"
	"commerce-core/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow: uow,
		jwt: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	user, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		// Same error for unknown user and wrong password
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(user.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &LoginResult{AccessToken: token}, nil
}
