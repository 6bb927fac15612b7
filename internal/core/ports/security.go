package ports

import (
	"context"
	"time"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// TokenCodec issues and validates signed bearer tokens.
type TokenCodec interface {
	// Issue mints a token for subjectID valid from now until now plus the configured TTL.
	Issue(subjectID string, now time.Time) (string, error)
	// Validate returns the subject of a well-formed, correctly signed and
	// unexpired token. Failures wrap one of domain.ErrTokenInvalidArgument,
	// domain.ErrTokenMalformed, domain.ErrTokenExpired or domain.ErrTokenUnsupported.
	Validate(token string) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. An empty hash still costs
	// one full comparison and always returns false.
	Verify(hash, password string) bool
}

// PrincipalResolver loads the account behind a subject and shapes it into a principal.
type PrincipalResolver interface {
	ResolveBySubject(ctx context.Context, subjectID string) (*domain.Principal, error)
	ResolveByEmail(ctx context.Context, email string) (*domain.Principal, error)
}
