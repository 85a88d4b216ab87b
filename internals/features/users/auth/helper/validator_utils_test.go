package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("tanaka", "tanaka@example.com", "password123"))

	assert.Error(t, ValidateRegisterInput("", "tanaka@example.com", "password123"))
	assert.Error(t, ValidateRegisterInput("ab", "tanaka@example.com", "password123"))
	assert.Error(t, ValidateRegisterInput("tanaka", "not-an-email", "password123"))
	assert.Error(t, ValidateRegisterInput("tanaka", "tanaka@example.com", "short"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("tanaka@example.com", "password123"))
	assert.NoError(t, ValidateLoginInput("tanaka", "password123"))

	assert.Error(t, ValidateLoginInput("", "password123"))
	assert.Error(t, ValidateLoginInput("   ", "password123"))
	assert.Error(t, ValidateLoginInput("tanaka", ""))
}

func TestValidateNewPassword(t *testing.T) {
	assert.NoError(t, ValidateNewPassword("password123"))
	assert.Error(t, ValidateNewPassword("1234567"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "password123"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-password"))
}
