package security_test

import (
	"testing"
	"time"

	"auth_api/internal/common"
	"auth_api/internal/common/security"
	"auth_api/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		ID:       "8f14e45f-ceea-4e77-8a43-2f0e3c2e8f11",
		Email:    "a@x.com",
		Username: "a",
	}
}

func TestIssueTokenPairRoundTrip(t *testing.T) {
	tm := security.NewTokenManager([]byte("test-secret"), 15*time.Minute, 24*time.Hour)
	user := testUser()

	pair, err := tm.IssueTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := tm.ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	userID, err := tm.ValidateRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	tm := security.NewTokenManager([]byte("test-secret"), 15*time.Minute, 24*time.Hour)
	pair, err := tm.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = tm.ValidateRefreshToken(pair.Access)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	tm := security.NewTokenManager([]byte("test-secret"), -1*time.Minute, -1*time.Minute)
	pair, err := tm.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = tm.ValidateAccessToken(pair.Access)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = tm.ValidateRefreshToken(pair.Refresh)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestWrongKeyFailsValidation(t *testing.T) {
	tm := security.NewTokenManager([]byte("test-secret"), 15*time.Minute, 24*time.Hour)
	other := security.NewTokenManager([]byte("other-secret"), 15*time.Minute, 24*time.Hour)

	pair, err := tm.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.Access)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTamperedTokenFailsValidation(t *testing.T) {
	tm := security.NewTokenManager([]byte("test-secret"), 15*time.Minute, 24*time.Hour)
	pair, err := tm.IssueTokenPair(testUser())
	require.NoError(t, err)

	tampered := []byte(pair.Access)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = tm.ValidateAccessToken(string(tampered))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
