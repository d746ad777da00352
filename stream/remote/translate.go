package remote

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/minio/minio-go/v7"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// Translate converts a MinIO error for the named object into a classified
// stream error. S3 error codes pick the variant; errors that carry no S3
// response (transport failures, local I/O) are classified like local ones.
// The original error stays reachable through errors.As.
func Translate(name string, err error) pcsxerrors.Exception {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "":
		return pcsxerrors.Classify(name, err)
	case "NoSuchKey", "NoSuchBucket":
		return pcsxerrors.Classify(name, fmt.Errorf("%w: %w", fs.ErrNotExist, err))
	case "AccessDenied":
		return pcsxerrors.Classify(name, fmt.Errorf("%w: %w", fs.ErrPermission, err))
	case "InvalidRange":
		return pcsxerrors.Classify(name, fmt.Errorf("%w: %w", io.EOF, err))
	}

	return pcsxerrors.Classify(name, fmt.Errorf("minio: %w", err))
}
