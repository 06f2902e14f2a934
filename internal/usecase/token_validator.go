package usecase

import (
	"context"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/jwt"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

var ErrTokenValidation = errs.New("token validation failed")

// TokenValidator resolves a bearer token issued by the account service to
// a still active user.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	// The stored role wins over the claim so a demotion applies at once.
	current, err := t.users.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(current.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}
	return current.ID, role, nil
}
