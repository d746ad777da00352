package errors

import (
	"errors"
	"fmt"
)

// Wrap builds a RuntimeError from a lower-level error.
// The diagnostic message is prefix + ": " + err.Error(), or err.Error() alone
// when prefix is empty. The original error is accessible via Unwrap() and
// compatible with errors.Is and errors.As.
//
// If err is an Exception its silent flag is preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := dec.Decode(&hdr); err != nil {
//	    return errors.Wrap(err, "reading savestate header")
//	}
func Wrap(err error, prefix string) Exception {
	if err == nil {
		return nil
	}

	msg := err.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}

	var exc Exception
	silent := errors.As(err, &exc) && exc.IsSilent()

	return &exception{
		variant:    RuntimeError,
		diagnostic: msg,
		silent:     silent,
		cause:      err,
	}
}

// Wrapf is Wrap with a formatted prefix.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := loadBios(path); err != nil {
//	    return errors.Wrapf(err, "bios slot %d", slot)
//	}
func Wrapf(err error, format string, args ...interface{}) Exception {
	if err == nil {
		return nil
	}

	return Wrap(err, fmt.Sprintf(format, args...))
}
