package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2!", hash)

	assert.True(t, CheckPassword(hash, "hunter2!"))
	assert.False(t, CheckPassword(hash, "hunter3!"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "hunter2!"))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
}
