package errors

import (
	"fmt"
	"sort"
)

// ErrnoInfo describes a platform error code known to the classifier.
type ErrnoInfo struct {
	// Code is the numeric platform error code.
	Code int

	// Name is the symbolic name, e.g. "ENOENT". Empty if the platform has none.
	Name string

	// Variant is what FromErrno classifies the code as.
	Variant Variant

	// Description is the platform's text for the code.
	Description string
}

// FromErrno maps a platform error code for the named resource to the most
// specific stream variant:
//
//   - no such entry (ENOENT, ENOTDIR) → FileNotFound
//   - permission refused (EACCES, EPERM, EROFS) → AccessDenied
//   - creation failures (EEXIST, EMFILE, ENFILE, ENAMETOOLONG, EISDIR) →
//     CannotCreateStream with the platform text as diagnostic
//   - anything else → BadStream with the platform text as diagnostic
//
// Unknown codes still produce a BadStream. FromErrno performs no I/O and has no
// side effects.
func FromErrno(name string, code int) Exception {
	return fromErrno(name, code)
}

func fromErrno(name string, code int) *exception {
	v, ok := errnoVariants[code]
	if !ok {
		v = BadStream
	}

	e := newStream(v, name)
	if v == BadStream || v == CannotCreateStream {
		e.diagnostic = ErrnoDescription(code)
	}
	return e
}

// ErrnoDescription returns the platform's text for code.
func ErrnoDescription(code int) string {
	if code <= 0 {
		return fmt.Sprintf("errno %d", code)
	}
	return errnoDescription(code)
}

// ErrnoName returns the symbolic name of code, or "" if it has none.
func ErrnoName(code int) string {
	if code <= 0 {
		return ""
	}
	return errnoName(code)
}

// KnownErrnos lists the codes the classifier maps explicitly, ordered by code.
// Codes not listed classify as BadStream.
func KnownErrnos() []ErrnoInfo {
	out := make([]ErrnoInfo, 0, len(errnoVariants))
	for code, v := range errnoVariants {
		out = append(out, ErrnoInfo{
			Code:        code,
			Name:        ErrnoName(code),
			Variant:     v,
			Description: ErrnoDescription(code),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
