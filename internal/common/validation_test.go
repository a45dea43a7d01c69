package common_test

import (
	"errors"
	"testing"

	"auth_api/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,max=5"`
}

func TestCollectValidationErrorsUsesJSONTags(t *testing.T) {
	v := common.NewValidator()

	err := v.Struct(samplePayload{Email: "nope", Username: "toolongname"})
	verr := common.CollectValidationErrors(err)
	require.NotNil(t, verr)

	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be at most 5 characters", verr.Fields["username"])
	assert.True(t, errors.Is(verr, common.ErrValidation))
}

func TestCollectValidationErrorsNilOnSuccess(t *testing.T) {
	v := common.NewValidator()

	err := v.Struct(samplePayload{Email: "a@x.com", Username: "a"})
	assert.Nil(t, common.CollectValidationErrors(err))
}

func TestHTTPStatusFromError(t *testing.T) {
	assert.Equal(t, 200, common.HTTPStatusFromError(nil))
	assert.Equal(t, 404, common.HTTPStatusFromError(common.ErrNotFound))
	assert.Equal(t, 401, common.HTTPStatusFromError(common.ErrInvalidCredentials))
	assert.Equal(t, 401, common.HTTPStatusFromError(common.ErrInvalidToken))
	assert.Equal(t, 409, common.HTTPStatusFromError(common.ErrDuplicateEmail))
	assert.Equal(t, 400, common.HTTPStatusFromError(common.NewValidationError()))
	assert.Equal(t, 429, common.HTTPStatusFromError(common.ErrTooManyRequests))
	assert.Equal(t, 500, common.HTTPStatusFromError(errors.New("boom")))
}
