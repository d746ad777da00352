package errors

// Exception is the capability set shared by every error value in the taxonomy.
//
// An Exception carries two independent messages: an untranslated diagnostic
// message meant for logs and developers, and a user message meant for end-user
// presentation. Stream variants additionally carry the name of the resource that
// failed. Exceptions are values: the With* methods never modify the receiver,
// they return a new Exception of the same variant.
type Exception interface {
	error

	// Variant returns the concrete member of the hierarchy.
	Variant() Variant

	// Kind returns the broad failure category of the variant.
	Kind() Kind

	// DiagnosticMessage returns the stored diagnostic message, which may be empty.
	DiagnosticMessage() string

	// UserMessage returns the stored user message, which may be empty.
	UserMessage() string

	// StreamName returns the implicated resource name. Always empty for
	// RuntimeError.
	StreamName() string

	// IsSilent reports whether user-facing presentation should be suppressed.
	// Logging is still expected.
	IsSilent() bool

	// FormatDiagnostic renders the developer-oriented message, filling in
	// variant-specific text when the stored message is empty.
	FormatDiagnostic() string

	// FormatDisplay renders the end-user message. It never returns an empty
	// string.
	FormatDisplay() string

	// WithDiagnostic returns a copy with the diagnostic message replaced.
	WithDiagnostic(msg string) Exception

	// WithUser returns a copy with the user message replaced.
	WithUser(msg string) Exception

	// WithMessage returns a copy with both messages set to msg.
	WithMessage(msg string) Exception

	// WithStreamName returns a copy naming the implicated resource. RuntimeError
	// carries no resource name and returns an unchanged copy.
	WithStreamName(name string) Exception

	// WithSilent returns a copy with the silent flag set.
	WithSilent(silent bool) Exception

	// Clone returns an independent copy of the same variant.
	Clone() Exception

	// Rethrow raises a clone of the receiver with panic. Use Catch in a deferred
	// call to turn it back into an error return.
	Rethrow()

	// Unwrap returns the lower-level error this value was built from, or nil.
	Unwrap() error
}
