package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret", 30*time.Minute)

	token, exp, err := m.Issue("john_student")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "john_student", subject)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, _, err := m.Issue("john_student")
	require.NoError(t, err)

	// advance the clock past the TTL
	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	subject, err := m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Empty(t, subject)
}

func TestJWTManager_WrongKey(t *testing.T) {
	issuer := NewJWTManager("key-one", time.Minute)
	verifier := NewJWTManager("key-two", time.Minute)

	token, _, err := issuer.Issue("john_student")
	require.NoError(t, err)

	subject, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
	assert.Empty(t, subject)
}

func TestJWTManager_TamperedPayload(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	real, _, err := m.Issue("john_student")
	require.NoError(t, err)
	forged, _, err := m.Issue("jane_faculty")
	require.NoError(t, err)

	// splice the forged payload onto the real signature: the decoded
	// subject must never be trusted before the signature check
	realParts := strings.Split(real, ".")
	forgedParts := strings.Split(forged, ".")
	require.Len(t, realParts, 3)
	require.Len(t, forgedParts, 3)
	spliced := forgedParts[0] + "." + forgedParts[1] + "." + realParts[2]

	subject, err := m.Verify(spliced)
	assert.ErrorIs(t, err, ErrTokenSignature)
	assert.Empty(t, subject)
}

func TestJWTManager_Malformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		subject, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
		assert.Empty(t, subject)
	}
}
