package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("ada@example.com", 42, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.EmailAddress)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("ada@example.com", 1, false)
	assert.NoError(t, err)

	claims, err := NewTokenManager("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestToken_Garbage(t *testing.T) {
	claims, err := NewTokenManager("test-secret").Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
