package errors

// unnamedStream stands in for an empty resource name when rendering.
const unnamedStream = "[Unnamed or unknown]"

// defaultText holds the fallback wording of a variant.
type defaultText struct {
	// diagnostic heads the diagnostic rendering of stream variants. For
	// RuntimeError it is only used when the stored diagnostic is empty.
	diagnostic string

	// display heads the end-user rendering of stream variants. For
	// RuntimeError it is only used when both stored messages are empty.
	display string
}

// defaultTexts maps each variant to its fallback wording.
// All fallback text lives here so renderings can be checked per variant.
var defaultTexts = map[Variant]defaultText{
	RuntimeError: {
		diagnostic: "Unspecified runtime error.",
		display:    "An unexpected error occurred.",
	},
	BadStream: {
		diagnostic: "Stream error.",
		display:    "An error occurred while accessing a file or stream.",
	},
	CannotCreateStream: {
		diagnostic: "File could not be created.",
		display:    "A file could not be created.",
	},
	FileNotFound: {
		diagnostic: "File not found.",
		display:    "The specified file could not be found.",
	},
	AccessDenied: {
		diagnostic: "Permission denied to file.",
		display:    "Permission denied while trying to open file, likely due to insufficient user account rights.",
	},
	EndOfStream: {
		diagnostic: "Unexpected end of file or stream.",
		display:    "Unexpected end of file or stream encountered. File is probably truncated or corrupted.",
	},
}

// getDefaultText returns the fallback wording for v.
// Returns the RuntimeError wording if v has no entry (safe default).
func getDefaultText(v Variant) defaultText {
	if text, ok := defaultTexts[v]; ok {
		return text
	}
	return defaultTexts[RuntimeError]
}

// pathLine renders the resource line shared by stream renderings.
func pathLine(name string) string {
	if name == "" {
		name = unnamedStream
	}
	return "Path: " + name
}
