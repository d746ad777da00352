package errors

// Variant identifies a member of the error hierarchy.
//
// Variants form a closed tree rooted at RuntimeError. A Variant is also an
// error so it can be used as an errors.Is target; the match honors the tree,
// so a FileNotFound value matches CannotCreateStream, BadStream and
// RuntimeError as well.
type Variant int

const (
	// RuntimeError is a generic recoverable failure.
	RuntimeError Variant = iota

	// BadStream means a named stream failed to open or failed after opening:
	// corrupted data, sudden closure, lost connection.
	BadStream

	// CannotCreateStream means a stream could not be opened or created at all.
	CannotCreateStream

	// FileNotFound means the resource does not exist or a path component is
	// invalid.
	FileNotFound

	// AccessDenied means the resource exists but permissions refused access.
	AccessDenied

	// EndOfStream means a read or seek reached the logical end of a stream. It
	// may be used as a control signal rather than a failure.
	EndOfStream

	numVariants
)

// Kind is the broad category a variant belongs to.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindGeneric is any recoverable runtime failure.
	KindGeneric Kind = "GENERIC"

	// KindStreamUnavailable is a named resource that could not be opened or
	// produced no further data.
	KindStreamUnavailable Kind = "STREAM_UNAVAILABLE"

	// KindResourceNotFound is a named resource that does not exist.
	KindResourceNotFound Kind = "RESOURCE_NOT_FOUND"

	// KindPermissionDenied is a named resource that exists but refused access.
	KindPermissionDenied Kind = "PERMISSION_DENIED"

	// KindStreamExhausted is a stream that reached its logical end.
	KindStreamExhausted Kind = "STREAM_EXHAUSTED"

	// KindUnknown is reported for nil errors and errors outside the taxonomy.
	KindUnknown Kind = "UNKNOWN"
)

type variantInfo struct {
	name   string
	phrase string
	parent Variant
	kind   Kind
}

// variants is indexed by Variant. The root names itself as parent.
var variants = [numVariants]variantInfo{
	RuntimeError:       {"RuntimeError", "runtime error", RuntimeError, KindGeneric},
	BadStream:          {"BadStream", "bad stream", RuntimeError, KindStreamUnavailable},
	CannotCreateStream: {"CannotCreateStream", "cannot create stream", BadStream, KindStreamUnavailable},
	FileNotFound:       {"FileNotFound", "file not found", CannotCreateStream, KindResourceNotFound},
	AccessDenied:       {"AccessDenied", "access denied", CannotCreateStream, KindPermissionDenied},
	EndOfStream:        {"EndOfStream", "end of stream", BadStream, KindStreamExhausted},
}

// Variants returns every variant, root first.
func Variants() []Variant {
	out := make([]Variant, 0, numVariants)
	for v := RuntimeError; v < numVariants; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is a member of the hierarchy.
func (v Variant) Valid() bool {
	return v >= RuntimeError && v < numVariants
}

// info returns the table entry for v. Out of range values are treated as
// RuntimeError.
func (v Variant) info() variantInfo {
	if !v.Valid() {
		return variants[RuntimeError]
	}
	return variants[v]
}

// String returns the variant name, e.g. "FileNotFound".
func (v Variant) String() string {
	return v.info().name
}

// Error returns a short lowercase phrase for the variant, e.g. "file not found".
func (v Variant) Error() string {
	return v.info().phrase
}

// Kind returns the category of the variant.
func (v Variant) Kind() Kind {
	return v.info().kind
}

// Parent returns the direct ancestor of v. The second result is false for the
// root.
func (v Variant) Parent() (Variant, bool) {
	if !v.Valid() || v == RuntimeError {
		return RuntimeError, false
	}
	return variants[v].parent, true
}

// IsA reports whether v is ancestor or descends from it.
func (v Variant) IsA(ancestor Variant) bool {
	if !v.Valid() || !ancestor.Valid() {
		return false
	}
	for cur := v; ; {
		if cur == ancestor {
			return true
		}
		parent, ok := cur.Parent()
		if !ok {
			return false
		}
		cur = parent
	}
}

// IsStream reports whether v carries a resource name.
func (v Variant) IsStream() bool {
	return v.IsA(BadStream)
}

// ParseVariant returns the variant with the given name as printed by String.
func ParseVariant(name string) (Variant, bool) {
	for v := RuntimeError; v < numVariants; v++ {
		if variants[v].name == name {
			return v, true
		}
	}
	return RuntimeError, false
}
