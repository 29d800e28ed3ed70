package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID()
	require.Len(t, id, 24)
	assert.True(t, IsValidID(id))

	// ids must be unique across calls
	assert.NotEqual(t, id, NewID())
}

func TestIsValidID(t *testing.T) {
	t.Parallel()

	valid := []string{
		"507f1f77bcf86cd799439011",
		"507F1F77BCF86CD799439011",
		"000000000000000000000000",
	}
	for _, id := range valid {
		assert.True(t, IsValidID(id), id)
	}

	invalid := []string{
		"",
		"507f1f77bcf86cd79943901",    // 23 chars
		"507f1f77bcf86cd7994390111",  // 25 chars
		"507f1f77bcf86cd79943901g",   // non-hex
		"507f1f77-bcf8-6cd7-994390",  // separators
		" 507f1f77bcf86cd799439011",  // leading space
	}
	for _, id := range invalid {
		assert.False(t, IsValidID(id), id)
	}
}
