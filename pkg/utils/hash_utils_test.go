package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestIsBcryptHash(t *testing.T) {
	hash, err := HashPassword("x")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.True(t, IsBcryptHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.False(t, IsBcryptHash("admin123"))
	assert.False(t, IsBcryptHash(""))
}

func TestCheckPasswordBcryptStored(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("admin123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestCheckPasswordLegacyPlaintext(t *testing.T) {
	assert.True(t, CheckPassword("admin123", "admin123"))
	assert.False(t, CheckPassword("wrong", "admin123"))
	assert.False(t, CheckPassword("", ""))
}
