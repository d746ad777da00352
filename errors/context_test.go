package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContext(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		context string
		want    string
	}{
		{"empty diagnostic", NewFileNotFound("bios.bin"), "loading bios", "loading bios"},
		{"prepends", NewBadStream("x").WithDiagnostic("crc mismatch"), "slot 3", "slot 3: crc mismatch"},
		{"empty context", NewBadStream("x").WithDiagnostic("crc mismatch"), "", "crc mismatch"},
		{"foreign error", stderrors.New("boom"), "boot", "boot: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AddContext(tt.err, tt.context)
			require.Equal(t, tt.want, err.DiagnosticMessage())
		})
	}
}

func TestAddContext_KeepsIdentity(t *testing.T) {
	orig := NewAccessDenied("slot1.p2s").WithUser("Check permissions.").WithSilent(true)

	err := AddContext(orig, "saving state")

	require.Equal(t, AccessDenied, err.Variant())
	require.Equal(t, "slot1.p2s", err.StreamName())
	require.Equal(t, "Check permissions.", err.UserMessage())
	require.True(t, err.IsSilent())
	require.Empty(t, orig.DiagnosticMessage())
}

func TestAddContext_ThroughFmtWrap(t *testing.T) {
	inner := NewEndOfStream("disc.iso")
	wrapped := fmt.Errorf("reading sector: %w", inner)

	err := AddContext(wrapped, "cdvd")

	require.Equal(t, EndOfStream, err.Variant())
	require.Equal(t, "cdvd", err.DiagnosticMessage())
}

func TestAddContext_Nil(t *testing.T) {
	require.Nil(t, AddContext(nil, "context"))
}

func TestSilence(t *testing.T) {
	orig := NewBadStream("pad.cfg")

	err := Silence(orig)

	require.True(t, err.IsSilent())
	require.Equal(t, BadStream, err.Variant())
	require.False(t, orig.IsSilent())
}

func TestSilence_ForeignError(t *testing.T) {
	cause := stderrors.New("user cancelled")

	err := Silence(cause)

	require.True(t, err.IsSilent())
	require.Equal(t, RuntimeError, err.Variant())
	require.Equal(t, "user cancelled", err.DiagnosticMessage())
	require.Equal(t, cause, err.Unwrap())
}

func TestSilence_Nil(t *testing.T) {
	require.Nil(t, Silence(nil))
}
