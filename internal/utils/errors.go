package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError pairs an HTTP status code with a message that is safe to show
// to the user. Err keeps the underlying cause for logging and errors.Is.
type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Code: %d, Message: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error { return e.Err }

func New(code int, message string) error {
	return &CustomError{
		Code:    code,
		Message: message,
	}
}

// Wrap is New with a cause attached.
func Wrap(code int, message string, err error) error {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// StatusCode returns the code of the first CustomError in err's chain, or
// 500 when there is none.
func StatusCode(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing message of the first CustomError in err's
// chain, or the generic status text.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
