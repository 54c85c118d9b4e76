package jwt

import (
	"BulkBlitz-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")

	token, err := svc.GenerateTokenUser("8c1f0b9e-4f6a-4a57-9b43-0d2f7f5a2a11", domain.RoleUser)
	require.NoError(t, err)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8c1f0b9e-4f6a-4a57-9b43-0d2f7f5a2a11", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestUserToken_WrongSecret(t *testing.T) {
	token, err := NewJWTServiceWithSecret("secret").GenerateTokenUser("u1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUserToken_Expired(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret").(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	token, err := svc.GenerateTokenUser("u1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestUserToken_Garbage(t *testing.T) {
	_, _, err := NewJWTServiceWithSecret("secret").GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")

	token, err := svc.GenerateTokenVerifyEmail("u1", "sam@example.com")
	require.NoError(t, err)

	id, email, err := svc.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, "sam@example.com", email)
}

func TestVerifyEmailToken_RejectsLoginToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")

	token, err := svc.GenerateTokenUser("u1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUserToken_RejectsVerifyToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret")

	token, err := svc.GenerateTokenVerifyEmail("u1", "sam@example.com")
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
