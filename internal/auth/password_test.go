package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.NotContains(t, hash, "correct horse")

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong horse", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("pw")
	require.NoError(t, err)
	second, err := HashPassword("pw")
	require.NoError(t, err)

	// Same password, different salt, different hash
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("pw", first))
	assert.True(t, CheckPassword("pw", second))
}
