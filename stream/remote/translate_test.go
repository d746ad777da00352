package remote

import (
	stderrors "errors"
	"io"
	"io/fs"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		want     pcsxerrors.Variant
		wantDiag string
		sentinel error
	}{
		{
			name:     "no such key",
			err:      minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."},
			want:     pcsxerrors.FileNotFound,
			sentinel: fs.ErrNotExist,
		},
		{
			name:     "no such bucket",
			err:      minio.ErrorResponse{Code: "NoSuchBucket", Message: "The specified bucket does not exist"},
			want:     pcsxerrors.FileNotFound,
			sentinel: fs.ErrNotExist,
		},
		{
			name:     "access denied",
			err:      minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied."},
			want:     pcsxerrors.AccessDenied,
			sentinel: fs.ErrPermission,
		},
		{
			name:     "invalid range",
			err:      minio.ErrorResponse{Code: "InvalidRange", Message: "The requested range is not satisfiable"},
			want:     pcsxerrors.EndOfStream,
			sentinel: io.EOF,
		},
		{
			name:     "other s3 code",
			err:      minio.ErrorResponse{Code: "SlowDown", Message: "Please reduce your request rate."},
			want:     pcsxerrors.BadStream,
			wantDiag: "minio: Please reduce your request rate.",
		},
		{
			name:     "non s3 error",
			err:      stderrors.New("tls: handshake failure"),
			want:     pcsxerrors.BadStream,
			wantDiag: "tls: handshake failure",
		},
		{
			name:     "eof",
			err:      io.EOF,
			want:     pcsxerrors.EndOfStream,
			sentinel: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate("bios/scph39001.bin", tt.err)

			require.Equal(t, tt.want, got.Variant())
			require.Equal(t, "bios/scph39001.bin", got.StreamName())
			require.Equal(t, tt.wantDiag, got.DiagnosticMessage())
			if tt.sentinel != nil {
				require.ErrorIs(t, got, tt.sentinel)
			}
		})
	}
}

func TestTranslate_KeepsResponse(t *testing.T) {
	got := Translate("a.bin", minio.ErrorResponse{Code: "NoSuchKey", RequestID: "req-1"})

	var resp minio.ErrorResponse
	require.True(t, stderrors.As(got, &resp))
	require.Equal(t, "req-1", resp.RequestID)
}

func TestTranslate_Nil(t *testing.T) {
	require.Nil(t, Translate("a.bin", nil))
}
