package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skyops/missiond/internal/domain"
)

// SessionResolver resolves a bearer token to a user record.
type SessionResolver interface {
	Execute(ctx context.Context, token string) (*domain.User, error)
}

// AuthValidator resolves the bearer token and sets the user in context (see
// UserFromContext). Every failure, missing header included, produces the same
// 401 body so the response never reveals why authentication failed.
type AuthValidator struct {
	resolver SessionResolver
}

func NewAuthValidator(resolver SessionResolver) *AuthValidator {
	return &AuthValidator{resolver: resolver}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(w)
			return
		}
		user, err := m.resolver.Execute(r.Context(), strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid or missing token"})
}
