package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.True(t, h.Verify("password123", hash))
	assert.False(t, h.Verify("password124", hash))
}

func TestPasswordHasher_HashIsSelfDescribing(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret-value")
	require.NoError(t, err)

	// bcrypt encodes algorithm, cost and salt into the hash itself
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotContains(t, hash, "secret-value")

	// verification works with a hasher configured differently
	other := NewPasswordHasher(bcrypt.DefaultCost)
	assert.True(t, other.Verify("secret-value", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	h1, err := h.Hash("password123")
	require.NoError(t, err)
	h2, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("password123", ""))
	assert.False(t, h.Verify("password123", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher(1000)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
