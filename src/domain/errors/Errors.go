package errors

import (
	"errors"
	"net/http"
)

type ErrorType string

const (
	NotFound         ErrorType = "NotFound"
	ValidationError  ErrorType = "ValidationError"
	NotAuthenticated ErrorType = "NotAuthenticated"
	UnknownError     ErrorType = "UnknownError"
)

const (
	NotFoundMessage         = "record not found"
	ValidationErrorMessage  = "validation error"
	NotAuthenticatedMessage = "not authenticated"
	UnknownErrorMessage     = "internal server error"
)

// AppError carries an error together with the category the REST layer maps to a status code.
type AppError struct {
	Err  error
	Type ErrorType
}

func NewAppError(err error, errType ErrorType) *AppError {
	return &AppError{
		Err:  err,
		Type: errType,
	}
}

// NewAppErrorWithType builds an AppError with the default message of its type.
func NewAppErrorWithType(errType ErrorType) *AppError {
	var err error

	switch errType {
	case NotFound:
		err = errors.New(NotFoundMessage)
	case ValidationError:
		err = errors.New(ValidationErrorMessage)
	case NotAuthenticated:
		err = errors.New(NotAuthenticatedMessage)
	default:
		err = errors.New(UnknownErrorMessage)
	}

	return &AppError{
		Err:  err,
		Type: errType,
	}
}

func (appErr *AppError) Error() string {
	return appErr.Err.Error()
}

func (appErr *AppError) Unwrap() error {
	return appErr.Err
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// AppErrorToHTTP returns the status code and the client-safe message for appErr.
// Unknown errors never expose the wrapped error text.
func AppErrorToHTTP(appErr *AppError) (int, string) {
	switch appErr.Type {
	case NotFound:
		return http.StatusNotFound, appErr.Error()
	case ValidationError:
		return http.StatusBadRequest, appErr.Error()
	case NotAuthenticated:
		return http.StatusUnauthorized, appErr.Error()
	default:
		return http.StatusInternalServerError, UnknownErrorMessage
	}
}
