package security_test

import (
	"testing"

	"auth_api/internal/common/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hasher, err := security.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, hasher.Verify("Secret123", hash))
	assert.False(t, hasher.Verify("secret123", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestVerifyDummyAlwaysRejects(t *testing.T) {
	hasher, err := security.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, hasher.VerifyDummy("Secret123"))
	assert.False(t, hasher.VerifyDummy(""))
}

func TestHasherCostValidation(t *testing.T) {
	_, err := security.NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	_, err = security.NewPasswordHasher(0) // defaults
	assert.NoError(t, err)
}
