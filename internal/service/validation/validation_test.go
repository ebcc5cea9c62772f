package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Run("Valid - Letters And Digits", func(t *testing.T) {
		assert.True(t, ValidateUsername("player1"))
		assert.True(t, ValidateUsername("a1"))
		assert.True(t, ValidateUsername("7seven"))
	})

	t.Run("Invalid - Letters Only", func(t *testing.T) {
		assert.False(t, ValidateUsername("player"))
	})

	t.Run("Invalid - Digits Only", func(t *testing.T) {
		assert.False(t, ValidateUsername("12345"))
	})

	t.Run("Invalid - Special Characters", func(t *testing.T) {
		assert.False(t, ValidateUsername("player_1"))
		assert.False(t, ValidateUsername("player 1"))
		assert.False(t, ValidateUsername("плеер1"))
	})

	t.Run("Invalid - Empty", func(t *testing.T) {
		assert.False(t, ValidateUsername(""))
	})
}

func TestValidatePassword(t *testing.T) {
	t.Run("Valid - Six Characters", func(t *testing.T) {
		assert.True(t, ValidatePassword("abc123"))
	})

	t.Run("Invalid - Too Short", func(t *testing.T) {
		assert.False(t, ValidatePassword("abc12"))
		assert.False(t, ValidatePassword(""))
	})
}
