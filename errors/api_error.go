package mederrors

import (
	"fmt"
)

// ApiError is the uniform error shape surfaced to callers for all
// failed operations, regardless of whether the failure originated
// locally (validation, network, JSON parsing) or remotely (a 4xx/5xx
// rejection from Medium).
//
// For remote rejections, Message and Code are taken verbatim from the
// first entry of the response's "errors" array. For everything else,
// Code is UNKNOWN_API_CODE.
type ApiError struct {
	Message string
	Code    int
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("medium api error %d: %s", e.Code, e.Message)
}

// NewApiError returns an ApiError with the given remote code and message.
func NewApiError(code int, message string) *ApiError {
	return &ApiError{
		Message: message,
		Code:    code,
	}
}

// NewUnknownApiError returns an ApiError with the sentinel code,
// used for local/validation/network failures.
func NewUnknownApiError(message string) *ApiError {
	return &ApiError{
		Message: message,
		Code:    UNKNOWN_API_CODE,
	}
}

// NewUnknownApiErrorf is NewUnknownApiError with a format string.
func NewUnknownApiErrorf(format string, args ...any) *ApiError {
	return NewUnknownApiError(fmt.Sprintf(format, args...))
}

// NewMissingParamError returns the ApiError used when a required
// parameter is absent from an operation's arguments.
func NewMissingParamError(param string) *ApiError {
	return NewUnknownApiErrorf("missing required parameter, %q", param)
}
