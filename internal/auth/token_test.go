package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, claims, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)

	id, err := parsed.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestIssueUsesUniqueJTI(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	_, a, err := issuer.Issue(1)
	require.NoError(t, err)
	_, b, err := issuer.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, _, err := issuer.Issue(1)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenIssuer("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenIssuer("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswords(t *testing.T) {
	Cost = bcrypt.MinCost
	t.Cleanup(func() { Cost = bcrypt.DefaultCost })

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
