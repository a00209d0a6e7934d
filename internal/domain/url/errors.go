package url

import (
	"errors"
	"fmt"
)

var (
	// ErrNullInput indicates that no URL was supplied at all
	ErrNullInput = errors.New("url must not be null")
	// ErrBlankInput indicates that the URL is empty after trimming whitespace
	ErrBlankInput = errors.New("url must not be blank")
	// ErrMalformedSyntax indicates that the URL violates generic URI grammar or IDNA rules
	ErrMalformedSyntax = errors.New("invalid URL syntax")
	// ErrMissingHost indicates that the URL has no host component
	ErrMissingHost = errors.New("url must contain a valid host")
	// ErrUnsupportedScheme indicates that the URL scheme is not allowed for the URL kind
	ErrUnsupportedScheme = errors.New("unsupported scheme")
	// ErrInvalidArgument indicates a bad argument to an accessor, such as an empty query key
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPercentEncoding indicates a malformed %XX sequence during strict decoding
	ErrInvalidPercentEncoding = errors.New("invalid percent-encoding")

	errEmptyKey = errors.New("key must not be blank")
)

// ValidationError is returned by every constructor in this package.
// Err is always one of the sentinel errors above; Cause optionally carries
// the lower-level parser or IDNA error.
type ValidationError struct {
	Input string
	Err   error
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", e.Err, e.Input, e.Cause)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func invalid(input string, err, cause error) *ValidationError {
	return &ValidationError{Input: input, Err: err, Cause: cause}
}

// Reason returns a short stable label for the sentinel wrapped by err, or
// "other" when err carries none of them.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNullInput):
		return "null"
	case errors.Is(err, ErrBlankInput):
		return "blank"
	case errors.Is(err, ErrMalformedSyntax):
		return "malformed"
	case errors.Is(err, ErrMissingHost):
		return "missing_host"
	case errors.Is(err, ErrUnsupportedScheme):
		return "unsupported_scheme"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrInvalidPercentEncoding):
		return "invalid_percent_encoding"
	default:
		return "other"
	}
}

// IsValidation reports whether err came from URL validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
