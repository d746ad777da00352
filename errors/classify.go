package errors

import (
	"errors"
	"io"
	"io/fs"
)

// Classify converts a Go error raised while accessing the named resource into
// an Exception.
//
// Exceptions pass through unchanged, except that a stream variant with no
// resource name picks up name. A bare Variant becomes a value of that variant.
// Platform error codes go through FromErrno.
// Otherwise the io/fs sentinels decide the variant, and anything left over is a
// BadStream carrying err's text. If name is empty, the path of a *fs.PathError
// in the chain is used.
//
// The returned value unwraps to err. Returns nil if err is nil.
//
// Example:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errors.Classify(path, err)
//	}
func Classify(name string, err error) Exception {
	if err == nil {
		return nil
	}

	var exc Exception
	if errors.As(err, &exc) {
		if exc.Variant().IsStream() && exc.StreamName() == "" && name != "" {
			return exc.WithStreamName(name)
		}
		return exc
	}

	if name == "" {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			name = pathErr.Path
		}
	}

	if code, ok := errnoFrom(err); ok {
		return fromErrno(name, code).withCause(err)
	}

	var e *exception
	var v Variant
	if errors.As(err, &v) {
		e = newException(v)
		if e.variant.IsStream() {
			e.stream = name
		}
		e.cause = err
		return e
	}

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		e = newStream(EndOfStream, name)
	case errors.Is(err, fs.ErrNotExist):
		e = newStream(FileNotFound, name)
	case errors.Is(err, fs.ErrPermission):
		e = newStream(AccessDenied, name)
	case errors.Is(err, fs.ErrExist):
		e = newStream(CannotCreateStream, name)
		e.diagnostic = err.Error()
	default:
		e = newStream(BadStream, name)
		e.diagnostic = err.Error()
	}
	e.cause = err
	return e
}
