package ports

import "context"

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and verifies bearer tokens (HS256). Verify returns the
// subject claim, or a single uniform error for any failure: callers must not
// learn whether the signature, the structure, or the expiry was at fault.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Verify(token string) (subject string, err error)
}

// LoginLockoutStore tracks failed login attempts per email. maxAttempts 0
// disables lockout entirely.
type LoginLockoutStore interface {
	IsLocked(ctx context.Context, email string) (locked bool, retryAfterSeconds int)
	RecordFailure(ctx context.Context, email string)
	RecordSuccess(ctx context.Context, email string)
}
