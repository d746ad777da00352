// Package errors provides the error taxonomy shared by the emulator's I/O and
// runtime code.
//
// Every failure is an Exception: a value of one Variant from a small, closed
// hierarchy, carrying a developer-facing diagnostic message and an end-user
// message that are stored and rendered separately. Stream variants also carry
// the name of the file or handle involved. The package stays compatible with
// the standard library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Hierarchy
//
//	RuntimeError
//	└── BadStream
//	    ├── CannotCreateStream
//	    │   ├── FileNotFound
//	    │   └── AccessDenied
//	    └── EndOfStream
//
// Each Variant is itself an error and works as an errors.Is target. The match
// follows the tree:
//
//	err := errors.NewFileNotFound("bios/scph39001.bin")
//	errors.Is(err, errors.CannotCreateStream) // true
//	errors.Is(err, errors.EndOfStream)        // false
//	errors.Is(err, fs.ErrNotExist)            // true
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.NewBadStream("memcard.ps2").
//	    WithDiagnostic("superblock checksum mismatch").
//	    WithUser("The memory card is corrupted.")
//
// Classifying I/O failures:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errors.Classify(path, err)
//	}
//
//	exc := errors.FromErrno("locked.bin", int(unix.EACCES)) // AccessDenied
//
// Adding context while propagating:
//
//	if err := loadState(slot); err != nil {
//	    return errors.AddContext(err, "loading slot 3")
//	}
//
// Rendering:
//
//	log.Print(errors.FormatDiagnostic(err)) // for developers
//	if !errors.IsSilent(err) {
//	    showPopup(errors.FormatDisplay(err)) // for end users
//	}
//
// # Rendering
//
// Stored messages are never rewritten by rendering. FormatDiagnostic and
// FormatDisplay compute a variant-specific fallback whenever a message slot is
// empty, so a default-constructed value always renders non-empty text. Stream
// variants render a header line, a "Path:" line and the stored message:
//
//	File not found.
//	Path: bios/scph39001.bin
//
// An empty resource name renders as "[Unnamed or unknown]".
//
// # Immutability
//
// Exceptions are immutable. The With* builders return modified copies and
// Clone returns an independent copy of the same variant, so a value can be
// shared between goroutines without locking.
//
// # Rethrow
//
// Rethrow re-raises a copy of the value as a panic, and Catch, deferred in an
// enclosing function, turns it back into a returned error. Plain error
// returns remain the normal way to propagate failures.
//
// # Silent errors
//
// A silent error is still logged but must not be presented to the user.
// Silence marks an error silent; Wrap and AddContext keep the flag.
package errors
