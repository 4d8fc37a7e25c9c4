package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

func respondWith(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/courses/1", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"enrollment not found", apperrors.ErrEnrollmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"students drop only", apperrors.ErrStudentsDropOnly, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate enrollment", apperrors.ErrAlreadyEnrolled, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"dependent records", apperrors.ErrResourceInUse, http.StatusBadRequest, dto.ErrorCodeResourceInUse},
		{"role mismatch", apperrors.ErrRoleMismatch, http.StatusBadRequest, dto.ErrorCodeRoleMismatch},
		{"course full", apperrors.ErrCourseFull, http.StatusBadRequest, dto.ErrorCodeCourseFull},
		{"validation failure", apperrors.NewValidationError("credits must be positive"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unexpected error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respondWith(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestCustomErrorMessagePreferred(t *testing.T) {
	status, body := respondWith(t, apperrors.NewValidationError("max_students must be positive"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "max_students must be positive", body.Error.Message)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	_, body := respondWith(t, assert.AnError)
	assert.NotContains(t, body.Error.Message, assert.AnError.Error())
}
