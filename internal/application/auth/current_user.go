package auth

import (
	"context"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

// CurrentUser resolves a bearer token to the user record it identifies. It is
// the single gate in front of every protected operation: a bad token and a
// token whose subject no longer exists both come back as ErrInvalidToken, so
// callers learn only "unauthenticated", never which check failed.
type CurrentUser struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
}

func NewCurrentUser(issuer ports.TokenIssuer, users ports.UserRepository) *CurrentUser {
	return &CurrentUser{issuer: issuer, users: users}
}

func (uc *CurrentUser) Execute(ctx context.Context, token string) (*domain.User, error) {
	subject, err := uc.issuer.Verify(token)
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	user, err := uc.users.GetByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrInvalidToken
	}
	return user, nil
}
