package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// DefaultTokenTTL applies when the configured lifetime is not positive.
const DefaultTokenTTL = 24 * time.Hour

var errUnexpectedAlg = errors.New("unexpected signing method")

// JWTCodec issues and validates HS512 tokens carrying sub, iat, exp and jti.
type JWTCodec struct {
	key    SigningKey
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// Option customises a JWTCodec.
type Option func(*JWTCodec)

// WithClock overrides the time source used during validation.
func WithClock(now func() time.Time) Option {
	return func(c *JWTCodec) { c.now = now }
}

// NewJWTCodec returns a codec signing with key. ttl <= 0 falls back to DefaultTokenTTL.
func NewJWTCodec(key SigningKey, ttl time.Duration, opts ...Option) *JWTCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := &JWTCodec{key: key, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	// Strict decoding rejects signatures whose trailing padding bits are set,
	// so every character of the signature segment is significant.
	c.parser = jwt.NewParser(
		jwt.WithStrictDecoding(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	return c
}

// Issue signs a token for subjectID, valid from now for the codec TTL.
func (c *JWTCodec) Issue(subjectID string, now time.Time) (string, error) {
	if strings.TrimSpace(subjectID) == "" {
		return "", fmt.Errorf("issue token: %w", domain.ErrTokenInvalidArgument)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.key.b)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks structure, algorithm, signature and expiry, in that order,
// and returns the token subject.
func (c *JWTCodec) Validate(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrTokenInvalidArgument
	}

	var claims jwt.RegisteredClaims
	if _, err := c.parser.ParseWithClaims(token, &claims, c.keyFunc); err != nil {
		return "", classify(err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", domain.ErrTokenMalformed)
	}
	return claims.Subject, nil
}

func (c *JWTCodec) keyFunc(t *jwt.Token) (any, error) {
	if t.Method != jwt.SigningMethodHS512 {
		return nil, fmt.Errorf("%w: %v", errUnexpectedAlg, t.Header["alg"])
	}
	return c.key.b, nil
}

// classify folds jwt parse errors into the domain token taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", domain.ErrTokenUnsupported, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
	}
}

// Reason returns a short metric/log label for a Validate error.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenInvalidArgument):
		return "empty"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenUnsupported):
		return "unsupported"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
