package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FromCatalog(t *testing.T) {
	err := New(AbilityInvalidKeyword)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "INVALID_ABILITY_KEYWORD", err.Code)
	assert.NotEmpty(t, err.Message)
	assert.True(t, err.Override)
}

func TestHasStatus(t *testing.T) {
	err := fmt.Errorf("register: %w", New(UserAlreadyExist))

	assert.True(t, HasStatus(err, UserAlreadyExist))
	assert.False(t, HasStatus(err, UserInvalidNickname))
	assert.False(t, HasStatus(errors.New("plain"), UserAlreadyExist))
}

func TestHTTPError_Is(t *testing.T) {
	err := New(RecordNoTmp)

	assert.ErrorIs(t, err, &HTTPError{})
	assert.ErrorIs(t, err, &HTTPError{Code: "NO_TMP_RECORD"})
	assert.NotErrorIs(t, err, &HTTPError{Code: "RECORD_NOT_FOUND"})
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewForbiddenError("original", false)
	clone := base.WithMessage("changed")

	require.NotSame(t, base, clone)
	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "changed", clone.Message)
	assert.Equal(t, "FORBIDDEN", clone.Code)
}

func TestCatalogs_Statuses(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{GeneralUnauthorized, http.StatusUnauthorized},
		{GeneralForbidden, http.StatusForbidden},
		{UserAlreadyExist, http.StatusConflict},
		{UserUnregistered, http.StatusNotFound},
		{TokenInvalidRegister, http.StatusUnauthorized},
		{TokenRefreshNotFound, http.StatusUnauthorized},
		{FolderUnauthorized, http.StatusForbidden},
		{RecordUnauthorized, http.StatusForbidden},
		{RecordNoTmp, http.StatusNotFound},
		{AnalysisUnauthorized, http.StatusForbidden},
		{AnalysisNotFound, http.StatusNotFound},
		{ChatRoomUnauthorized, http.StatusForbidden},
		{ChatRoomNotFound, http.StatusNotFound},
		{ChatInvalidContent, http.StatusBadRequest},
		{ChatReplyFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.status.Code(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.HTTPStatus())
			assert.NotEmpty(t, tt.status.Message())
		})
	}
}
