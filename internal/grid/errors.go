package grid

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every error describing an invalid grid file.
var ErrMalformed = errors.New("malformed grid")

// Parse error codes.
const (
	CodeSyntax = "SYNTAX"
	CodeEmpty  = "EMPTY"
	CodeRagged = "RAGGED_ROWS"
	CodeValue  = "INVALID_CODE"
)

// ParseError contains details about why a grid could not be loaded.
type ParseError struct {
	Code    string
	Message string
	Err     error
}

func newParseError(code, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match both ErrMalformed and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}
