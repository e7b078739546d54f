package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string identifier for a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeValidation         ErrorCode = "COMMON_004"
	ErrCodeSerialization      ErrorCode = "COMMON_005"
	ErrCodeCacheError         ErrorCode = "COMMON_006"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_007"
	ErrCodeTimeout            ErrorCode = "COMMON_008"
	ErrCodeNotImplemented     ErrorCode = "COMMON_009"

	ErrCodeUnknown ErrorCode = "UNKNOWN"
	CodeOK         ErrorCode = "OK"
)

// Element table error codes.
const (
	ErrCodeElementUnknown ErrorCode = "ELEM_001"
)

// Slab builder error codes.
const (
	ErrCodeSlabQueryInvalid    ErrorCode = "SLB_001"
	ErrCodeSlabTerminationBad  ErrorCode = "SLB_002"
	ErrCodeSlabGenerationError ErrorCode = "SLB_003"
)

// Adsorption engine error codes.
const (
	ErrCodeStructureEmpty   ErrorCode = "ADS_001"
	ErrCodeNoSurfaceAtoms   ErrorCode = "ADS_002"
	ErrCodeAdsorbateInvalid ErrorCode = "ADS_003"
	ErrCodeAnalysisFailed   ErrorCode = "ADS_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeElementUnknown: http.StatusNotFound,

	ErrCodeSlabQueryInvalid:    http.StatusBadRequest,
	ErrCodeSlabTerminationBad:  http.StatusBadRequest,
	ErrCodeSlabGenerationError: http.StatusInternalServerError,

	ErrCodeStructureEmpty:   http.StatusUnprocessableEntity,
	ErrCodeNoSurfaceAtoms:   http.StatusUnprocessableEntity,
	ErrCodeAdsorbateInvalid: http.StatusBadRequest,
	ErrCodeAnalysisFailed:   http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeElementUnknown: "element not tabulated",

	ErrCodeSlabQueryInvalid:    "invalid surface query",
	ErrCodeSlabTerminationBad:  "unsupported surface termination",
	ErrCodeSlabGenerationError: "slab generation failed",

	ErrCodeStructureEmpty:   "structure contains no atoms",
	ErrCodeNoSurfaceAtoms:   "no surface atoms found",
	ErrCodeAdsorbateInvalid: "invalid adsorbate label",
	ErrCodeAnalysisFailed:   "adsorption analysis failed",
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

// IsClientError reports whether the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode maps to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode, e.g. "ADS" for
// ADS_001.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
