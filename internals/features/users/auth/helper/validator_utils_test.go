package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("maria", "maria@example.com", "pass1234"))

	assert.Error(t, ValidateRegisterInput("", "maria@example.com", "pass1234"))
	assert.Error(t, ValidateRegisterInput("ab", "maria@example.com", "pass1234"))
	assert.Error(t, ValidateRegisterInput("maria", "not-an-email", "pass1234"))
	assert.Error(t, ValidateRegisterInput("maria", "maria@example.com", "short1"))
	assert.Error(t, ValidateRegisterInput("maria", "maria@example.com", "lettersonly"))
	assert.Error(t, ValidateRegisterInput("maria", "maria@example.com", "12345678"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("maria", "whatever"))
	assert.Error(t, ValidateLoginInput("  ", "whatever"))
	assert.Error(t, ValidateLoginInput("maria", ""))
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, ValidateResetPassword("maria@example.com", "newpass99"))
	assert.Error(t, ValidateResetPassword("bad-email", "newpass99"))
	assert.Error(t, ValidateResetPassword("maria@example.com", "weak"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)
	require.NotEqual(t, "pass1234", hash)

	assert.NoError(t, CheckPasswordHash(hash, "pass1234"))
	assert.Error(t, CheckPasswordHash(hash, "wrongpass1"))
}
