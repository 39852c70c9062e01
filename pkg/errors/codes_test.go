package errors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

func TestHTTPStatusForCode_KnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   errors.ErrorCode
		status int
	}{
		{errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
		{errors.ErrCodeUpstreamTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeUpstreamUnavailable, http.StatusServiceUnavailable},
		{errors.ErrCodeLegalSearchFailed, http.StatusBadGateway},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, errors.HTTPStatusForCode(tc.code), string(tc.code))
	}
}

func TestHTTPStatusForCode_UnknownFallsBackTo500(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusInternalServerError, errors.HTTPStatusForCode("NOPE_999"))
}

func TestDefaultMessageForCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "too many requests", errors.DefaultMessageForCode(errors.ErrCodeTooManyRequests))
	assert.Equal(t, "unknown error", errors.DefaultMessageForCode("NOPE_999"))
}

func TestIsClientAndServerError(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.IsClientError(errors.ErrCodeValidation))
	assert.False(t, errors.IsServerError(errors.ErrCodeValidation))

	assert.True(t, errors.IsServerError(errors.ErrCodeLegalSearchFailed))
	assert.False(t, errors.IsClientError(errors.ErrCodeLegalSearchFailed))
}

func TestModuleForCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LEGAL", errors.ModuleForCode(errors.ErrCodeLegalParseFailed))
	assert.Equal(t, "ANALYSIS", errors.ModuleForCode(errors.ErrCodeAnalysisTimeout))
	assert.Equal(t, "COMMON", errors.ModuleForCode(errors.ErrCodeInternal))
}

//Personal.AI order the ending
