package errors

// Helpers for mapping filesystem, stream and context errors to project ErrorCodes

import (
	"context"
	stderrs "errors"
	"io/fs"
)

// Classify picks an ErrorCode for a foreign error; our own errors keep their code
func Classify(err error) ErrorCode {
	if err == nil {
		return ErrorCodeUnknown
	}
	if e, ok := As(err); ok {
		return e.code
	}
	switch {
	case stderrs.Is(err, context.Canceled), stderrs.Is(err, context.DeadlineExceeded):
		return ErrorCodeCanceled
	case stderrs.Is(err, fs.ErrNotExist):
		return ErrorCodeNotFound
	case stderrs.Is(err, fs.ErrPermission):
		return ErrorCodeForbidden
	}
	return ErrorCodeIO
}

// FromIO wraps a stream error with a classified code and a path field.
// Returns nil when err is nil so call sites stay one line
func FromIO(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return WithField(WithOp(err, op), path)
	}
	return &Error{code: Classify(err), msg: op + " " + path, orig: err, op: op, field: path}
}

// FromCreate is FromIO for files being created. A missing parent directory or any
// other non-permission failure is a create failure, not a missing input
func FromCreate(err error, op, path string) error {
	if err == nil {
		return nil
	}
	switch Classify(err) {
	case ErrorCodeNotFound, ErrorCodeIO:
		return &Error{code: ErrorCodeCantCreate, msg: op + " " + path, orig: err, op: op, field: path}
	}
	return FromIO(err, op, path)
}
