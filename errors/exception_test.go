package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestException_Error(t *testing.T) {
	tests := []struct {
		name string
		err  Exception
		want string
	}{
		{"default runtime error", NewRuntimeError(), "runtime error"},
		{"runtime error with diagnostic", New(RuntimeError).WithDiagnostic("disk full"), "disk full"},
		{"unnamed stream", New(BadStream), "bad stream"},
		{"named stream", NewFileNotFound("bios.bin"), "file not found: bios.bin"},
		{
			"named stream with diagnostic",
			NewBadStream("memcard.ps2").WithDiagnostic("checksum mismatch"),
			"bad stream: memcard.ps2: checksum mismatch",
		},
		{
			"unnamed stream with diagnostic",
			New(EndOfStream).WithDiagnostic("short read"),
			"end of stream: short read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestException_FormatDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  Exception
		want string
	}{
		{"runtime error fallback", NewRuntimeError(), "Unspecified runtime error."},
		{"runtime error verbatim", NewRuntimeError().WithDiagnostic("vu1 stalled"), "vu1 stalled"},
		{
			"runtime error ignores user message",
			NewRuntimeError().WithUser("Something broke."),
			"Unspecified runtime error.",
		},
		{"bad stream unnamed", New(BadStream), "Stream error.\nPath: [Unnamed or unknown]"},
		{"file not found named", NewFileNotFound("bios.bin"), "File not found.\nPath: bios.bin"},
		{
			"access denied with diagnostic",
			NewAccessDenied("sstates/slot1.p2s").WithDiagnostic("read-only mount"),
			"Permission denied to file.\nPath: sstates/slot1.p2s\nread-only mount",
		},
		{
			"cannot create stream",
			NewCannotCreateStream("logs/emu.log"),
			"File could not be created.\nPath: logs/emu.log",
		},
		{
			"end of stream",
			NewEndOfStream("disc.iso"),
			"Unexpected end of file or stream.\nPath: disc.iso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.FormatDiagnostic())
		})
	}
}

func TestException_FormatDisplay(t *testing.T) {
	tests := []struct {
		name string
		err  Exception
		want string
	}{
		{"runtime error fallback", NewRuntimeError(), "An unexpected error occurred."},
		{"runtime error user message", NewRuntimeError().WithUser("Try again."), "Try again."},
		{
			"runtime error falls back to diagnostic",
			NewRuntimeError().WithDiagnostic("disk full"),
			"disk full",
		},
		{
			"file not found",
			NewFileNotFound("bios.bin"),
			"The specified file could not be found.\nPath: bios.bin",
		},
		{
			"bad stream ignores diagnostic",
			NewBadStream("memcard.ps2").WithDiagnostic("checksum mismatch"),
			"An error occurred while accessing a file or stream.\nPath: memcard.ps2",
		},
		{
			"bad stream with user message",
			NewBadStream("memcard.ps2").WithUser("The memory card is corrupted."),
			"An error occurred while accessing a file or stream.\nPath: memcard.ps2\nThe memory card is corrupted.",
		},
		{
			"unnamed end of stream",
			New(EndOfStream),
			"Unexpected end of file or stream encountered. File is probably truncated or corrupted.\nPath: [Unnamed or unknown]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.FormatDisplay())
		})
	}
}

func TestException_FormatDoesNotMutate(t *testing.T) {
	err := New(BadStream)

	first := err.FormatDiagnostic()
	_ = err.FormatDisplay()

	require.Empty(t, err.DiagnosticMessage())
	require.Empty(t, err.UserMessage())
	require.Empty(t, err.StreamName())
	require.Equal(t, first, err.FormatDiagnostic())
}

func TestException_Builders(t *testing.T) {
	base := NewBadStream("a.bin")

	withDiag := base.WithDiagnostic("diag")
	withUser := base.WithUser("user")
	withBoth := base.WithMessage("both")
	renamed := base.WithStreamName("b.bin")
	silent := base.WithSilent(true)

	// base is untouched
	require.Empty(t, base.DiagnosticMessage())
	require.Empty(t, base.UserMessage())
	require.Equal(t, "a.bin", base.StreamName())
	require.False(t, base.IsSilent())

	require.Equal(t, "diag", withDiag.DiagnosticMessage())
	require.Empty(t, withDiag.UserMessage())
	require.Equal(t, "user", withUser.UserMessage())
	require.Empty(t, withUser.DiagnosticMessage())
	require.Equal(t, "both", withBoth.DiagnosticMessage())
	require.Equal(t, "both", withBoth.UserMessage())
	require.Equal(t, "b.bin", renamed.StreamName())
	require.True(t, silent.IsSilent())

	for _, e := range []Exception{withDiag, withUser, withBoth, renamed, silent} {
		require.Equal(t, BadStream, e.Variant())
	}
}

func TestException_WithStreamName_NonStream(t *testing.T) {
	err := NewRuntimeError().WithStreamName("ignored.bin")

	require.Empty(t, err.StreamName())
	require.Equal(t, RuntimeError, err.Variant())
}

func TestException_Clone(t *testing.T) {
	cause := stderrors.New("io failure")
	orig := newStream(AccessDenied, "slot1.p2s")
	orig.diagnostic = "diag"
	orig.user = "user"
	orig.silent = true
	orig.cause = cause

	clone := orig.Clone()

	require.Equal(t, AccessDenied, clone.Variant())
	require.Equal(t, orig.FormatDiagnostic(), clone.FormatDiagnostic())
	require.Equal(t, orig.FormatDisplay(), clone.FormatDisplay())
	require.True(t, clone.IsSilent())
	require.Equal(t, cause, clone.Unwrap())

	// independent values
	c, ok := clone.(*exception)
	require.True(t, ok)
	require.NotSame(t, orig, c)
	c.diagnostic = "changed"
	require.Equal(t, "diag", orig.diagnostic)
}

func TestException_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    Exception
		target error
		want   bool
	}{
		{"same variant", NewFileNotFound("x"), FileNotFound, true},
		{"ancestor variant", NewFileNotFound("x"), BadStream, true},
		{"root variant", NewEndOfStream("x"), RuntimeError, true},
		{"sibling variant", NewFileNotFound("x"), AccessDenied, false},
		{"not exist bridge", NewFileNotFound("x"), fs.ErrNotExist, true},
		{"permission bridge", NewAccessDenied("x"), fs.ErrPermission, true},
		{"eof bridge", NewEndOfStream("x"), io.EOF, true},
		{"bad stream is not eof", NewBadStream("x"), io.EOF, false},
		{"runtime error is not not-exist", NewRuntimeError(), fs.ErrNotExist, false},
		{"unrelated target", NewBadStream("x"), stderrors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stderrors.Is(tt.err, tt.target))
		})
	}
}

func TestException_IsThroughCause(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := Wrap(sentinel, "prefix")

	require.True(t, stderrors.Is(err, sentinel))
	require.True(t, stderrors.Is(err, RuntimeError))
}
