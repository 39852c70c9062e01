// Package errors_test provides unit tests for the AppError type, factory
// functions, and error-chain helpers defined in pkg/errors/errors.go.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.ErrCodeInternal, "unexpected failure"},
		{"validation", errors.ErrCodeValidation, "company name is required"},
		{"rate limit", errors.ErrCodeTooManyRequests, "too many requests"},
		{"legal search", errors.ErrCodeLegalSearchFailed, "index query failed"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail, "Detail should be empty for bare New()")
			assert.Nil(t, ae.Cause, "Cause should be nil for bare New()")
		})
	}
}

func TestNew_StackIsPopulated(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeInternal, "test")
	require.NotNil(t, ae)
	assert.Contains(t, ae.Stack, "errors_test")
}

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()

	result := errors.Wrap(nil, errors.ErrCodeInternal, "should not matter")
	assert.Nil(t, result)
}

func TestWrap_CauseChainIsPreserved(t *testing.T) {
	t.Parallel()

	root := stderrors.New("connection reset")
	wrapped := errors.Wrap(root, errors.ErrCodeLegalDetailFailed, "detail fetch failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.ErrCodeLegalDetailFailed, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, root), "errors.Is must reach the root cause")
}

func TestWrap_UnknownCodePreservesOriginalCode(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeUpstreamTimeout, "news timed out")
	outer := errors.Wrap(inner, errors.CodeUnknown, "gathering failed")

	require.NotNil(t, outer)
	assert.Equal(t, errors.ErrCodeUpstreamTimeout, outer.Code)
}

func TestError_FormatWithAndWithoutDetail(t *testing.T) {
	t.Parallel()

	bare := errors.New(errors.ErrCodeNotFound, "case not found")
	assert.Equal(t, "[COMMON_005] case not found", bare.Error())

	detailed := bare.WithDetail("ecli=ECLI:NL:HR:2024:123")
	assert.Equal(t, "[COMMON_005] case not found: ecli=ECLI:NL:HR:2024:123", detailed.Error())
}

func TestWithDetail_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	original := errors.New(errors.ErrCodeInternal, "boom")
	clone := original.WithDetail("extra")

	assert.Empty(t, original.Detail)
	assert.Equal(t, "extra", clone.Detail)
}

func TestWithDetail_NilReceiverReturnsNil(t *testing.T) {
	t.Parallel()

	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(fmt.Errorf("y")))
	assert.Nil(t, ae.WithRetryAfter(5))
}

func TestWithCause_AttachesCause(t *testing.T) {
	t.Parallel()

	root := stderrors.New("dial tcp: i/o timeout")
	ae := errors.UpstreamTimeout("legal index timed out").WithCause(root)

	assert.True(t, stderrors.Is(ae, root))
}

func TestIsCode_TraversesChain(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeCrawlFetchFailed, "fetch failed")
	middle := errors.Wrap(inner, errors.ErrCodeAnalysisFailed, "profile gathering failed")
	outer := fmt.Errorf("handler: %w", middle)

	assert.True(t, errors.IsCode(outer, errors.ErrCodeCrawlFetchFailed))
	assert.True(t, errors.IsCode(outer, errors.ErrCodeAnalysisFailed))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeNewsFetchFailed))
}

func TestGetCode_ReturnsFirstAppErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))

	ae := errors.New(errors.ErrCodeValidation, "bad input")
	assert.Equal(t, errors.ErrCodeValidation, errors.GetCode(fmt.Errorf("wrap: %w", ae)))
}

func TestRateLimit_CarriesRetryAfter(t *testing.T) {
	t.Parallel()

	ae := errors.RateLimit("quota exhausted", 42)
	require.NotNil(t, ae)
	assert.Equal(t, errors.ErrCodeTooManyRequests, ae.Code)
	assert.Equal(t, 42, ae.RetryAfter)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.IsRetryable(errors.UpstreamTimeout("slow")))
	assert.True(t, errors.IsRetryable(errors.UpstreamUnavailable("down")))
	assert.False(t, errors.IsRetryable(errors.Validation("bad")))
	assert.False(t, errors.IsRetryable(nil))
}

func TestConvenienceFactories_Codes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.ErrCodeBadRequest, errors.InvalidParam("x").Code)
	assert.Equal(t, errors.ErrCodeValidation, errors.Validation("x").Code)
	assert.Equal(t, errors.ErrCodeNotFound, errors.NotFound("x").Code)
	assert.Equal(t, errors.ErrCodeUnauthorized, errors.Unauthorized("x").Code)
	assert.Equal(t, errors.ErrCodeInternal, errors.Internal("x").Code)
	assert.Equal(t, errors.ErrCodeUpstreamTimeout, errors.UpstreamTimeout("x").Code)
	assert.Equal(t, errors.ErrCodeUpstreamUnavailable, errors.UpstreamUnavailable("x").Code)
}

func TestError_StackNotInMessage(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeInternal, "boom")
	assert.False(t, strings.Contains(ae.Error(), ".go:"), "stack frames must not leak into Error()")
}

//Personal.AI order the ending
