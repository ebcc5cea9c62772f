package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJwtToken(t *testing.T) {
	t.Run("Fail - Empty Secret", func(t *testing.T) {
		_, err := NewJwtToken("", AccessTokenTTL)
		assert.Error(t, err)
	})

	t.Run("Success", func(t *testing.T) {
		service, err := NewJwtToken("secret-key", AccessTokenTTL)
		require.NoError(t, err)
		assert.NotNil(t, service)
	})
}

func TestJwtTokenRoundTrip(t *testing.T) {
	service, err := NewJwtToken("secret-key", AccessTokenTTL)
	require.NoError(t, err)

	tokenString, err := service.Create("alice1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := service.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice1", claims.Username)
}

func TestJwtTokenValidateErrors(t *testing.T) {
	service, err := NewJwtToken("secret-key", AccessTokenTTL)
	require.NoError(t, err)

	t.Run("Fail - Expired Token", func(t *testing.T) {
		expiredService, err := NewJwtToken("secret-key", -time.Minute)
		require.NoError(t, err)

		tokenString, err := expiredService.Create("alice1")
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Fail - Wrong Secret", func(t *testing.T) {
		otherService, err := NewJwtToken("other-key", AccessTokenTTL)
		require.NoError(t, err)

		tokenString, err := otherService.Create("alice1")
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Fail - Wrong Secret And Expired", func(t *testing.T) {
		// A forged token must never read as merely expired, no matter
		// what exp it carries.
		forgedService, err := NewJwtToken("other-key", -time.Minute)
		require.NoError(t, err)

		tokenString, err := forgedService.Create("alice1")
		require.NoError(t, err)

		_, err = service.Validate(tokenString)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Fail - Garbage Token", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestJwtTokenDecodeUnverified(t *testing.T) {
	service, err := NewJwtToken("secret-key", -time.Minute)
	require.NoError(t, err)

	tokenString, err := service.Create("alice1")
	require.NoError(t, err)

	// The token is already expired, decoding must still recover the
	// username.
	claims, err := service.DecodeUnverified(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice1", claims.Username)

	_, err = service.DecodeUnverified("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
