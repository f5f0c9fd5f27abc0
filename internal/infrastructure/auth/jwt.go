package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	domerrors "github.com/skyops/missiond/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with HS256 and a shared secret.
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewTokenIssuer creates an issuer. expiry bounds token lifetime; values <= 0
// fall back to 24h rather than issuing unbounded tokens.
func NewTokenIssuer(secret []byte, issuer string, expiry time.Duration) *TokenIssuer {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, issuer: issuer, expiry: expiry}
}

// Issue signs a token carrying subject as the identity claim.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates the token and returns its subject. Every
// failure mode (bad signature, malformed structure, wrong algorithm, expiry)
// collapses into the same error so callers cannot probe which check failed.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domerrors.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", domerrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
