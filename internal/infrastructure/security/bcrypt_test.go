package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, h.Verify(hash, "s3cret!"))
	assert.False(t, h.Verify(hash, "wrong"))
	assert.False(t, h.Verify("", "s3cret!"))
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	h, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
