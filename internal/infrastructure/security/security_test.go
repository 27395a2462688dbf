package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainComparer(t *testing.T) {
	c := NewPlainComparer()

	sealed, err := c.Seal("secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", sealed)

	assert.NoError(t, c.Compare(sealed, "secret1"))
	assert.ErrorIs(t, c.Compare(sealed, "wrong"), ErrPasswordMismatch)
}

func TestBcryptComparer(t *testing.T) {
	c := NewBcryptComparer()

	sealed, err := c.Seal("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", sealed)

	assert.NoError(t, c.Compare(sealed, "secret1"))
	assert.ErrorIs(t, c.Compare(sealed, "wrong"), ErrPasswordMismatch)
}

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("sess-123")
	require.NoError(t, err)

	sessionID, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sessionID)
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("sess-123")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestTokenManagerRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Validate("not-a-token")
	assert.Error(t, err)
}
