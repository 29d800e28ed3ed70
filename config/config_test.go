package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SnapshotsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "some value")

	c := New()
	assert.Equal(t, "some value", GetString(c, "CONFIG_TEST_KEY", ""))
}

func TestGetString(t *testing.T) {
	t.Parallel()

	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	// present-but-empty wins over the default
	assert.Equal(t, "", GetString(c, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	t.Parallel()

	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
	assert.Equal(t, 180, GetInt(c, "BAD", 180))
	assert.Equal(t, 180, GetInt(nil, "TIMEOUT", 180))
}

func TestGetStringSlice(t *testing.T) {
	t.Parallel()

	c := map[string]string{
		"ORIGINS": "https://a.example, https://b.example ,,https://c.example",
	}

	assert.Equal(t,
		[]string{"https://a.example", "https://b.example", "https://c.example"},
		GetStringSlice(c, "ORIGINS"))
	assert.Nil(t, GetStringSlice(c, "MISSING"))
}
