package security

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSigningKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xfb}, MinKeyBytes)

	for name, enc := range map[string]*base64.Encoding{
		"std":     base64.StdEncoding,
		"raw std": base64.RawStdEncoding,
		"url":     base64.URLEncoding,
		"raw url": base64.RawURLEncoding,
	} {
		t.Run(name, func(t *testing.T) {
			key, err := DecodeSigningKey(enc.EncodeToString(raw))
			require.NoError(t, err)
			assert.Equal(t, MinKeyBytes, key.Len())
		})
	}
}

func TestDecodeSigningKey_Rejects(t *testing.T) {
	_, err := DecodeSigningKey("")
	assert.ErrorIs(t, err, ErrMissingSigningKey)

	_, err = DecodeSigningKey(base64.StdEncoding.EncodeToString(make([]byte, MinKeyBytes-1)))
	assert.ErrorIs(t, err, ErrWeakSigningKey)

	_, err = DecodeSigningKey("not base64 at all!")
	assert.Error(t, err)
}

func TestSigningKey_Redacted(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("secret-", 10)))
	key, err := DecodeSigningKey(secret)
	require.NoError(t, err)

	for _, out := range []string{fmt.Sprint(key), fmt.Sprintf("%v", key), fmt.Sprintf("%+v", key), fmt.Sprintf("%#v", key)} {
		assert.NotContains(t, out, "secret")
		assert.NotContains(t, out, secret)
	}
}
