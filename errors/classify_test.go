package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		res      string
		err      error
		want     Variant
		wantName string
		wantDiag string
	}{
		{"eof", "disc.iso", io.EOF, EndOfStream, "disc.iso", ""},
		{"unexpected eof", "disc.iso", io.ErrUnexpectedEOF, EndOfStream, "disc.iso", ""},
		{"not exist", "bios.bin", fs.ErrNotExist, FileNotFound, "bios.bin", ""},
		{"permission", "slot.p2s", fs.ErrPermission, AccessDenied, "slot.p2s", ""},
		{"exist", "new.ps2", fs.ErrExist, CannotCreateStream, "new.ps2", "file already exists"},
		{"closed", "log.txt", fs.ErrClosed, BadStream, "log.txt", "file already closed"},
		{"other", "pad.cfg", stderrors.New("parse failure"), BadStream, "pad.cfg", "parse failure"},
		{
			"path error supplies name",
			"",
			&fs.PathError{Op: "open", Path: "/bios/missing.bin", Err: fs.ErrNotExist},
			FileNotFound,
			"/bios/missing.bin",
			"",
		},
		{
			"explicit name wins over path error",
			"bios",
			&fs.PathError{Op: "open", Path: "/bios/missing.bin", Err: fs.ErrNotExist},
			FileNotFound,
			"bios",
			"",
		},
		{"wrapped sentinel", "x", fmt.Errorf("read: %w", io.EOF), EndOfStream, "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.res, tt.err)

			require.Equal(t, tt.want, got.Variant())
			require.Equal(t, tt.wantName, got.StreamName())
			require.Equal(t, tt.wantDiag, got.DiagnosticMessage())
			require.True(t, stderrors.Is(got, tt.err))
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	require.Nil(t, Classify("x", nil))
}

func TestClassify_Exception(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		orig := NewAccessDenied("a.bin").WithDiagnostic("d")
		require.Equal(t, orig, Classify("other.bin", orig))
	})

	t.Run("fills missing name", func(t *testing.T) {
		got := Classify("a.bin", New(EndOfStream))
		require.Equal(t, EndOfStream, got.Variant())
		require.Equal(t, "a.bin", got.StreamName())
	})

	t.Run("runtime error has no name", func(t *testing.T) {
		got := Classify("a.bin", NewRuntimeError())
		require.Equal(t, RuntimeError, got.Variant())
		require.Empty(t, got.StreamName())
	})
}

func TestClassify_BareVariant(t *testing.T) {
	got := Classify("bios.bin", fmt.Errorf("loading: %w", AccessDenied))

	require.Equal(t, AccessDenied, got.Variant())
	require.Equal(t, "bios.bin", got.StreamName())
	require.True(t, stderrors.Is(got, fs.ErrPermission))

	got = Classify("bios.bin", RuntimeError)
	require.Equal(t, RuntimeError, got.Variant())
	require.Empty(t, got.StreamName())
}
