package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsmart/learnsmart/internal/app/models/dto"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
)

func handle(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return rec.Code, resp.Error
}

func TestHandleAPIError_NotFound(t *testing.T) {
	status, detail := handle(t, apperrors.ErrLessonNotFound)
	assert.Equal(t, 404, status)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, detail.Code)
}

func TestHandleAPIError_InvalidClassCode(t *testing.T) {
	status, detail := handle(t, apperrors.ErrInvalidClassCode)
	assert.Equal(t, 404, status)
	assert.Equal(t, dto.ErrorCodeInvalidClassCode, detail.Code)
	assert.Equal(t, "code", detail.Field)
}

func TestHandleAPIError_AlreadyMember(t *testing.T) {
	status, detail := handle(t, apperrors.ErrAlreadyMember)
	assert.Equal(t, 409, status)
	assert.Equal(t, dto.ErrorCodeAlreadyMember, detail.Code)
}

func TestHandleAPIError_QuotaExceeded(t *testing.T) {
	status, detail := handle(t, apperrors.ErrQuotaExceeded)
	assert.Equal(t, 403, status)
	assert.Equal(t, dto.ErrorCodeQuotaExceeded, detail.Code)
}

func TestHandleAPIError_CodeExhausted(t *testing.T) {
	status, _ := handle(t, apperrors.ErrCodeExhausted)
	assert.Equal(t, 503, status)
}

func TestHandleAPIError_InvalidCredentials(t *testing.T) {
	status, _ := handle(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, 401, status)
}

func TestHandleAPIError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrClassNotFound)
	status, _ := handle(t, wrapped)
	assert.Equal(t, 404, status)
}

func TestHandleAPIError_UnknownErrorIs500(t *testing.T) {
	status, detail := handle(t, errors.New("boom"))
	assert.Equal(t, 500, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
}
