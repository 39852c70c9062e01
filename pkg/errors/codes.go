package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_012"
	ErrCodeConfigInvalid      ErrorCode = "COMMON_013"
)

// Aliases used at call sites that predate the split into module families.
const (
	CodeUnknown = ErrorCode("UNKNOWN")
	CodeOK      = ErrorCode("OK")
)

// Legal Case Module Error Codes
const (
	ErrCodeLegalSearchFailed   ErrorCode = "LEGAL_001"
	ErrCodeLegalParseFailed    ErrorCode = "LEGAL_002"
	ErrCodeLegalDetailFailed   ErrorCode = "LEGAL_003"
	ErrCodeLegalIndexThrottled ErrorCode = "LEGAL_004"
	ErrCodeCompanyNameGeneric  ErrorCode = "LEGAL_005"
)

// News Module Error Codes
const (
	ErrCodeNewsUnavailable  ErrorCode = "NEWS_001"
	ErrCodeNewsFetchFailed  ErrorCode = "NEWS_002"
	ErrCodeNewsParseFailed  ErrorCode = "NEWS_003"
	ErrCodeNewsNotConfigured ErrorCode = "NEWS_004"
)

// Web Crawl Module Error Codes
const (
	ErrCodeCrawlFetchFailed  ErrorCode = "CRAWL_001"
	ErrCodeCrawlParseFailed  ErrorCode = "CRAWL_002"
	ErrCodeCrawlDisallowed   ErrorCode = "CRAWL_003"
	ErrCodeCrawlNotConfigured ErrorCode = "CRAWL_004"
)

// Risk Scoring Module Error Codes
const (
	ErrCodeRiskScoringFailed    ErrorCode = "RISK_001"
	ErrCodeRiskWeightsInvalid   ErrorCode = "RISK_002"
	ErrCodeRiskDataInsufficient ErrorCode = "RISK_003"
)

// Analysis Coordinator Error Codes
const (
	ErrCodeAnalysisTimeout       ErrorCode = "ANALYSIS_001"
	ErrCodeAnalysisFailed        ErrorCode = "ANALYSIS_002"
	ErrCodeAnalysisDepthInvalid  ErrorCode = "ANALYSIS_003"
	ErrCodeUpstreamTimeout       ErrorCode = "ANALYSIS_004"
	ErrCodeUpstreamUnavailable   ErrorCode = "ANALYSIS_005"
	ErrCodeAllSourcesUnavailable ErrorCode = "ANALYSIS_006"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeConfigInvalid:      http.StatusInternalServerError,

	ErrCodeLegalSearchFailed:   http.StatusBadGateway,
	ErrCodeLegalParseFailed:    http.StatusBadGateway,
	ErrCodeLegalDetailFailed:   http.StatusBadGateway,
	ErrCodeLegalIndexThrottled: http.StatusServiceUnavailable,
	ErrCodeCompanyNameGeneric:  http.StatusBadRequest,

	ErrCodeNewsUnavailable:   http.StatusServiceUnavailable,
	ErrCodeNewsFetchFailed:   http.StatusBadGateway,
	ErrCodeNewsParseFailed:   http.StatusBadGateway,
	ErrCodeNewsNotConfigured: http.StatusServiceUnavailable,

	ErrCodeCrawlFetchFailed:   http.StatusBadGateway,
	ErrCodeCrawlParseFailed:   http.StatusBadGateway,
	ErrCodeCrawlDisallowed:    http.StatusBadGateway,
	ErrCodeCrawlNotConfigured: http.StatusServiceUnavailable,

	ErrCodeRiskScoringFailed:    http.StatusInternalServerError,
	ErrCodeRiskWeightsInvalid:   http.StatusInternalServerError,
	ErrCodeRiskDataInsufficient: http.StatusInternalServerError,

	ErrCodeAnalysisTimeout:       http.StatusGatewayTimeout,
	ErrCodeAnalysisFailed:        http.StatusInternalServerError,
	ErrCodeAnalysisDepthInvalid:  http.StatusBadRequest,
	ErrCodeUpstreamTimeout:       http.StatusGatewayTimeout,
	ErrCodeUpstreamUnavailable:   http.StatusServiceUnavailable,
	ErrCodeAllSourcesUnavailable: http.StatusServiceUnavailable,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeConfigInvalid:      "invalid configuration",

	ErrCodeLegalSearchFailed:   "legal case search failed",
	ErrCodeLegalParseFailed:    "failed to parse case index response",
	ErrCodeLegalDetailFailed:   "failed to fetch case detail",
	ErrCodeLegalIndexThrottled: "case index throttled the request",
	ErrCodeCompanyNameGeneric:  "company name too generic to search safely",

	ErrCodeNewsUnavailable:   "news service unavailable",
	ErrCodeNewsFetchFailed:   "failed to fetch news signals",
	ErrCodeNewsParseFailed:   "failed to parse news response",
	ErrCodeNewsNotConfigured: "news service not configured",

	ErrCodeCrawlFetchFailed:   "failed to fetch company website",
	ErrCodeCrawlParseFailed:   "failed to parse company website",
	ErrCodeCrawlDisallowed:    "crawling disallowed for target site",
	ErrCodeCrawlNotConfigured: "web crawler not configured",

	ErrCodeRiskScoringFailed:    "risk scoring failed",
	ErrCodeRiskWeightsInvalid:   "risk category weights do not sum to 1.0",
	ErrCodeRiskDataInsufficient: "insufficient data for risk scoring",

	ErrCodeAnalysisTimeout:       "analysis deadline exceeded",
	ErrCodeAnalysisFailed:        "analysis failed",
	ErrCodeAnalysisDepthInvalid:  "invalid analysis depth",
	ErrCodeUpstreamTimeout:       "upstream source timed out",
	ErrCodeUpstreamUnavailable:   "upstream source unavailable",
	ErrCodeAllSourcesUnavailable: "no data source produced a result",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
