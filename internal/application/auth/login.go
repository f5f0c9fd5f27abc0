package auth

import (
	"context"

	"github.com/skyops/missiond/internal/application/ports"
	"github.com/skyops/missiond/internal/domain"
	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Login authenticates an email/password pair and issues a bearer token. An
// unknown email and a wrong password fail with distinct errors; hash
// verification itself is constant-time inside the hasher.
type Login struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	issuer  ports.TokenIssuer
	lockout ports.LoginLockoutStore
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, lockout ports.LoginLockoutStore) *Login {
	return &Login{users: users, hasher: hasher, issuer: issuer, lockout: lockout}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if locked, _ := uc.lockout.IsLocked(ctx, input.Email); locked {
		return nil, domerrors.ErrInvalidCredentials
	}
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		uc.lockout.RecordFailure(ctx, input.Email)
		return nil, domerrors.ErrInvalidCredentials
	}
	uc.lockout.RecordSuccess(ctx, input.Email)
	token, err := uc.issuer.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, User: user}, nil
}
