package errors

import (
	"io"
	"io/fs"
	"strings"
)

// exception is the concrete implementation of Exception.
// It is private to enforce construction through package functions.
type exception struct {
	variant    Variant
	diagnostic string
	user       string
	stream     string
	silent     bool
	cause      error
}

// newException returns a default-constructed value of variant v.
func newException(v Variant) *exception {
	if !v.Valid() {
		v = RuntimeError
	}
	return &exception{variant: v}
}

// copy returns a shallow copy. All fields are immutable so a shallow copy is
// independent of the original.
func (e *exception) copy() *exception {
	c := *e
	return &c
}

// Error returns a single-line rendering.
// Format: "phrase: stream: diagnostic" for stream variants, the diagnostic
// message (or the variant phrase) otherwise.
func (e *exception) Error() string {
	if !e.variant.IsStream() {
		if e.diagnostic != "" {
			return e.diagnostic
		}
		return e.variant.Error()
	}

	parts := []string{e.variant.Error()}
	if e.stream != "" {
		parts = append(parts, e.stream)
	}
	if e.diagnostic != "" {
		parts = append(parts, e.diagnostic)
	}
	return strings.Join(parts, ": ")
}

// Variant returns the variant.
func (e *exception) Variant() Variant {
	return e.variant
}

// Kind returns the kind of the variant.
func (e *exception) Kind() Kind {
	return e.variant.Kind()
}

// DiagnosticMessage returns the stored diagnostic message.
func (e *exception) DiagnosticMessage() string {
	return e.diagnostic
}

// UserMessage returns the stored user message.
func (e *exception) UserMessage() string {
	return e.user
}

// StreamName returns the resource name.
func (e *exception) StreamName() string {
	return e.stream
}

// IsSilent returns the silent flag.
func (e *exception) IsSilent() bool {
	return e.silent
}

func (e *exception) FormatDiagnostic() string {
	text := getDefaultText(e.variant)
	if !e.variant.IsStream() {
		if e.diagnostic != "" {
			return e.diagnostic
		}
		return text.diagnostic
	}

	lines := []string{text.diagnostic, pathLine(e.stream)}
	if e.diagnostic != "" {
		lines = append(lines, e.diagnostic)
	}
	return strings.Join(lines, "\n")
}

func (e *exception) FormatDisplay() string {
	text := getDefaultText(e.variant)
	if !e.variant.IsStream() {
		switch {
		case e.user != "":
			return e.user
		case e.diagnostic != "" && e.cause == nil:
			// a wrapped cause's text stays in the diagnostic only
			return e.diagnostic
		default:
			return text.display
		}
	}

	lines := []string{text.display, pathLine(e.stream)}
	if e.user != "" {
		lines = append(lines, e.user)
	}
	return strings.Join(lines, "\n")
}

func (e *exception) WithDiagnostic(msg string) Exception {
	c := e.copy()
	c.diagnostic = msg
	return c
}

func (e *exception) WithUser(msg string) Exception {
	c := e.copy()
	c.user = msg
	return c
}

func (e *exception) WithMessage(msg string) Exception {
	c := e.copy()
	c.diagnostic = msg
	c.user = msg
	return c
}

func (e *exception) WithStreamName(name string) Exception {
	c := e.copy()
	if c.variant.IsStream() {
		c.stream = name
	}
	return c
}

func (e *exception) WithSilent(silent bool) Exception {
	c := e.copy()
	c.silent = silent
	return c
}

// withCause returns a copy that unwraps to cause.
func (e *exception) withCause(cause error) *exception {
	c := e.copy()
	c.cause = cause
	return c
}

func (e *exception) Clone() Exception {
	return e.copy()
}

func (e *exception) Rethrow() {
	panic(e.copy())
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *exception) Unwrap() error {
	return e.cause
}

// Is matches Variant targets along the hierarchy and bridges to the io/fs
// sentinels: FileNotFound is fs.ErrNotExist, AccessDenied is fs.ErrPermission
// and EndOfStream is io.EOF.
func (e *exception) Is(target error) bool {
	if v, ok := target.(Variant); ok {
		return e.variant.IsA(v)
	}

	switch target {
	case fs.ErrNotExist:
		return e.variant.IsA(FileNotFound)
	case fs.ErrPermission:
		return e.variant.IsA(AccessDenied)
	case io.EOF:
		return e.variant.IsA(EndOfStream)
	}
	return false
}
