package errors

import "fmt"

// New returns a default-constructed value of variant v. Both messages start
// empty; the renderings fall back to variant-specific text.
// An invalid variant yields a RuntimeError.
//
// Example:
//
//	err := errors.New(errors.EndOfStream).WithStreamName("memcard.ps2")
func New(v Variant) Exception {
	return newException(v)
}

// Newf returns a value of variant v with a formatted diagnostic message.
//
// Example:
//
//	err := errors.Newf(errors.BadStream, "short header: %d bytes", n)
func Newf(v Variant, format string, args ...interface{}) Exception {
	e := newException(v)
	e.diagnostic = fmt.Sprintf(format, args...)
	return e
}

// NewRuntimeError returns a default RuntimeError. It is not silent.
func NewRuntimeError() Exception {
	return newException(RuntimeError)
}

// NewBadStream returns a BadStream naming the given resource.
func NewBadStream(name string) Exception {
	return newStream(BadStream, name)
}

// NewCannotCreateStream returns a CannotCreateStream naming the given resource.
func NewCannotCreateStream(name string) Exception {
	return newStream(CannotCreateStream, name)
}

// NewFileNotFound returns a FileNotFound naming the given resource.
func NewFileNotFound(name string) Exception {
	return newStream(FileNotFound, name)
}

// NewAccessDenied returns an AccessDenied naming the given resource.
func NewAccessDenied(name string) Exception {
	return newStream(AccessDenied, name)
}

// NewEndOfStream returns an EndOfStream naming the given resource.
func NewEndOfStream(name string) Exception {
	return newStream(EndOfStream, name)
}

// NewShortRead returns an EndOfStream for a read of want bytes that stopped
// after got.
func NewShortRead(name string, got, want int) Exception {
	e := newStream(EndOfStream, name)
	e.diagnostic = fmt.Sprintf("read %d of %d bytes", got, want)
	return e
}

func newStream(v Variant, name string) *exception {
	e := newException(v)
	e.stream = name
	return e
}
