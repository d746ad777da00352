package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Variants are valid targets and match along the hierarchy:
//
//	if errors.Is(err, errors.CannotCreateStream) {
//	    // FileNotFound and AccessDenied land here too
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var exc errors.Exception
//	if errors.As(err, &exc) {
//	    log.Print(exc.FormatDiagnostic())
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetVariant extracts the Variant of the outermost Exception in err's chain.
// The second result is false if err is nil or holds no Exception.
func GetVariant(err error) (Variant, bool) {
	if err == nil {
		return RuntimeError, false
	}

	var exc Exception
	if stderrors.As(err, &exc) {
		return exc.Variant(), true
	}

	return RuntimeError, false
}

// GetKind extracts the Kind of the outermost Exception in err's chain.
// Returns KindUnknown if the error is nil or not an Exception.
func GetKind(err error) Kind {
	if v, ok := GetVariant(err); ok {
		return v.Kind()
	}
	return KindUnknown
}

// IsSilent reports whether the outermost Exception in err's chain is silent.
// Returns false if the error is nil or not an Exception.
func IsSilent(err error) bool {
	var exc Exception
	if err != nil && stderrors.As(err, &exc) {
		return exc.IsSilent()
	}
	return false
}

// FormatDiagnostic renders err for logs. Exceptions use their own rendering;
// other errors use Error(). Returns "" if err is nil.
func FormatDiagnostic(err error) string {
	if err == nil {
		return ""
	}

	var exc Exception
	if stderrors.As(err, &exc) {
		return exc.FormatDiagnostic()
	}
	return err.Error()
}

// FormatDisplay renders err for end users. Exceptions use their own rendering;
// other errors get the generic RuntimeError wording so internal details are
// not shown. Returns "" if err is nil.
func FormatDisplay(err error) string {
	if err == nil {
		return ""
	}

	var exc Exception
	if stderrors.As(err, &exc) {
		return exc.FormatDisplay()
	}
	return getDefaultText(RuntimeError).display
}
