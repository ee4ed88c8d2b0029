package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies where a failure originated. The HTTP code follows from it,
// but the kind is what logs and callers branch on.
type Kind string

const (
	KindRequest       Kind = "request"
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindDispatch      Kind = "dispatch"
	KindNotFound      Kind = "not_found"
	KindRateLimit     Kind = "rate_limit"
	KindInternal      Kind = "internal"
)

// FieldError describes one field that violated its constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Kind    Kind         `json:"-"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kindForCode(code),
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// RequestError reports a body that could not be parsed at all.
func RequestError(err error) *AppError {
	e := New(http.StatusBadRequest, "Invalid request body", err)
	e.Kind = KindRequest
	return e
}

// ValidationError carries every offending field, not just the first.
func ValidationError(message string, fields []FieldError) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Kind = KindValidation
	e.Fields = fields
	return e
}

// ConfigurationError is operator-fixable only, so it is never reported as a 4xx.
func ConfigurationError(err error) *AppError {
	e := New(http.StatusInternalServerError, "Server not configured", err)
	e.Kind = KindConfiguration
	return e
}

// DispatchError wraps a failed call to the email provider.
func DispatchError(err error) *AppError {
	e := New(http.StatusInternalServerError, "Failed to send message", err)
	e.Kind = KindDispatch
	return e
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func kindForCode(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindRequest
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindInternal
	}
}
