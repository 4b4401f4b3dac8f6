package apierrors

import (
	"errors"
	"fmt"
)

// AppError defines a standard application error.
type AppError struct {
	Code     string        // Application-specific error code
	Message  string        // User-friendly error message
	Category ErrorCategory // Business or application
	Err      error         // Underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates an AppError caused by the request or by catalog rules.
func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryBusiness,
		Err:      cause,
	}
}

// NewApplicationError creates an AppError caused by infrastructure or internal failures.
func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: CategoryApplication,
		Err:      cause,
	}
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
