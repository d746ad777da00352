package errors

import "errors"

// AddContext prepends context to the diagnostic message of err while keeping
// its variant, resource name and user message.
//
// If err is not an Exception, it is converted to a RuntimeError first.
// Returns nil if err is nil.
//
// Example:
//
//	if err := restore(state); err != nil {
//	    return errors.AddContext(err, "loading slot 3")
//	}
func AddContext(err error, context string) Exception {
	if err == nil {
		return nil
	}

	e := toException(err)
	switch {
	case context == "":
	case e.diagnostic == "":
		e.diagnostic = context
	default:
		e.diagnostic = context + ": " + e.diagnostic
	}
	return e
}

// Silence marks err as silent so user-facing layers skip presentation.
//
// If err is not an Exception, it is converted to a RuntimeError first.
// Returns nil if err is nil.
func Silence(err error) Exception {
	if err == nil {
		return nil
	}

	e := toException(err)
	e.silent = true
	return e
}

// toException returns a private copy of the first Exception in err's chain,
// or a RuntimeError wrapping err when there is none.
func toException(err error) *exception {
	var exc Exception
	if errors.As(err, &exc) {
		if e, ok := exc.(*exception); ok {
			return e.copy()
		}
		return &exception{
			variant:    exc.Variant(),
			diagnostic: exc.DiagnosticMessage(),
			user:       exc.UserMessage(),
			stream:     exc.StreamName(),
			silent:     exc.IsSilent(),
			cause:      exc.Unwrap(),
		}
	}

	return &exception{
		variant:    RuntimeError,
		diagnostic: err.Error(),
		cause:      err,
	}
}
