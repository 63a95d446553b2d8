package gdrive

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnsupported  = errors.New("unsupported operation")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotReadable  = errors.New("not readable")
	ErrDriveError   = errors.New("drive error")
	ErrIOError      = errors.New("io error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newDriveError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrDriveError,
		msg:        msg,
		cause:      cause,
	}
}

func newIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// opError wraps a failure from an adapter operation with the operation name
// and the path involved, preserving the cause for errors.Is/As.
func opError(op, path string, cause error) error {
	return fmt.Errorf("%s '%s': %w", op, path, cause)
}

func opError2(op, src, dst string, cause error) error {
	return fmt.Errorf("%s '%s' -> '%s': %w", op, src, dst, cause)
}
