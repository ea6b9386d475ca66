package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation         = "validation_error"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeStorageUnavailable = "storage_unavailable"
	CodePartialFailure     = "partial_failure"
	CodeInternal           = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error

	// Details carries machine-readable context the caller needs for manual
	// reconciliation: the orphaned storage key of a partial failure, the
	// referencing-variant count of a blocked delete, the existing asset id
	// of a duplicate hash.
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Conflict(err error) *Error {
	return New(http.StatusConflict, CodeConflict, err)
}

func StorageUnavailable(err error) *Error {
	return New(http.StatusBadGateway, CodeStorageUnavailable, err)
}

// PartialFailure reports a mutation that left one side effect behind after a
// later step failed. Never auto-healed; the details name what survives.
func PartialFailure(err error) *Error {
	return New(http.StatusBadGateway, CodePartialFailure, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// From returns err as an *Error, wrapping unknown errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}
