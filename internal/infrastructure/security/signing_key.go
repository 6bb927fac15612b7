package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MinKeyBytes is the smallest accepted HS512 key (512 bits).
const MinKeyBytes = 64

var (
	ErrMissingSigningKey = errors.New("signing key is not configured")
	ErrWeakSigningKey    = fmt.Errorf("signing key must decode to at least %d bytes", MinKeyBytes)
)

// SigningKey holds the process-wide HMAC secret. It is immutable after
// decoding and its printed forms are redacted.
type SigningKey struct {
	b []byte
}

// DecodeSigningKey decodes a base64 secret (standard or URL alphabet, padded
// or not) and rejects keys shorter than MinKeyBytes.
func DecodeSigningKey(encoded string) (SigningKey, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return SigningKey{}, ErrMissingSigningKey
	}

	var (
		raw []byte
		err error
	)
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if raw, err = enc.DecodeString(encoded); err == nil {
			break
		}
	}
	if err != nil {
		return SigningKey{}, fmt.Errorf("decode signing key: %w", err)
	}
	if len(raw) < MinKeyBytes {
		return SigningKey{}, ErrWeakSigningKey
	}
	return SigningKey{b: raw}, nil
}

// Len returns the key size in bytes.
func (k SigningKey) Len() int { return len(k.b) }

func (k SigningKey) String() string   { return "SigningKey(redacted)" }
func (k SigningKey) GoString() string { return k.String() }
