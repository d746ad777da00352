// Package stream opens files through go-billy and reports every failure as a
// classified stream error.
//
// It is the file I/O collaborator of the errors package: callers get plain
// io.Reader/io.Writer semantics, but each failed open, read, write, seek or
// close comes back as an errors.Exception naming the file involved.
//
//	fsys := stream.NewLocal("/home/user/.config/PCSX2")
//	f, err := fsys.Open("bios/scph39001.bin")
//	if errors.Is(err, errors.FileNotFound) {
//	    // prompt for a BIOS
//	}
//
// NewMemory gives an in-memory filesystem with the same behavior for tests.
package stream
