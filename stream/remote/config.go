// Package remote opens streams stored in MinIO or any S3-compatible bucket
// and reports failures with the same classified errors as package stream.
package remote

import (
	"github.com/minio/minio-go/v7"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// DefaultMaxConcurrency bounds parallel downloads in Store.ReadFiles when
// Config.MaxConcurrency is zero.
const DefaultMaxConcurrency = 8

// Config holds remote store configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000")
	Endpoint string

	// Bucket is the S3 bucket name
	Bucket string

	// AccessKey is the access key ID for authentication
	AccessKey string

	// SecretKey is the secret access key for authentication
	SecretKey string

	// UseSSL enables HTTPS connections
	UseSSL bool

	// Prefix is an optional prefix for all object keys (for namespacing)
	Prefix string

	// Client is an optional pre-configured MinIO client.
	// If provided, Endpoint/AccessKey/SecretKey are ignored.
	Client *minio.Client

	// MaxConcurrency limits parallel downloads in ReadFiles.
	// Default: DefaultMaxConcurrency
	MaxConcurrency int
}

// validate checks if the configuration is valid.
// Either Client OR (Endpoint + Bucket + AccessKey + SecretKey) must be provided.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return pcsxerrors.New(pcsxerrors.RuntimeError).WithDiagnostic("bucket is required")
	}
	if c.MaxConcurrency < 0 {
		return pcsxerrors.Newf(pcsxerrors.RuntimeError, "max concurrency must not be negative, got %d", c.MaxConcurrency)
	}

	if c.Client != nil {
		return nil
	}

	if c.Endpoint == "" {
		return pcsxerrors.New(pcsxerrors.RuntimeError).
			WithDiagnostic("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return pcsxerrors.New(pcsxerrors.RuntimeError).
			WithDiagnostic("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return pcsxerrors.New(pcsxerrors.RuntimeError).
			WithDiagnostic("secret key is required when client is not provided")
	}

	return nil
}
