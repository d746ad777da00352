package remote

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// Store reads and writes objects in a single bucket. Object names are
// slash-separated paths below the configured prefix.
type Store struct {
	client      *minio.Client
	bucket      string
	prefix      string
	concurrency int
}

// NewStore creates a Store. No request is made until the first operation.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, pcsxerrors.AddContext(err, "invalid remote config")
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, pcsxerrors.Wrap(err, "failed to create minio client")
		}
	}

	concurrency := cfg.MaxConcurrency
	if concurrency == 0 {
		concurrency = DefaultMaxConcurrency
	}

	return &Store{
		client:      client,
		bucket:      cfg.Bucket,
		prefix:      normalizePrefix(cfg.Prefix),
		concurrency: concurrency,
	}, nil
}

// Bucket returns the bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}

// normalizeKey cleans a path and ensures forward slashes without leading or
// trailing slashes. Returns "" for the root.
func normalizeKey(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.ToSlash(filepath.Clean(name))
	name = strings.Trim(name, "/")
	if name == "." {
		return ""
	}
	return name
}

func normalizePrefix(prefix string) string {
	return normalizeKey(prefix)
}

// key joins the store prefix with name.
func (s *Store) key(name string) string {
	name = normalizeKey(name)
	switch {
	case s.prefix == "":
		return name
	case name == "":
		return s.prefix
	default:
		return s.prefix + "/" + name
	}
}

// Open opens the named object for reading. The object is stat'ed first so a
// missing object fails here rather than on the first Read.
func (s *Store) Open(ctx context.Context, name string) (*Object, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, Translate(name, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, Translate(name, err)
	}

	return &Object{obj: obj, name: name, size: info.Size}, nil
}

// ReadFile reads the named object and returns its contents.
func (s *Store) ReadFile(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Close() }()

	buf := make([]byte, obj.Size())
	if _, err := obj.ReadExact(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFiles fetches several objects in parallel, at most MaxConcurrency at a
// time. The first failure cancels the remaining downloads and is returned.
func (s *Store) ReadFiles(ctx context.Context, names []string) (map[string][]byte, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)

	var mu sync.Mutex
	out := make(map[string][]byte, len(names))

	for _, name := range names {
		name := name
		eg.Go(func() error {
			data, err := s.ReadFile(egCtx, name)
			if err != nil {
				return err
			}

			mu.Lock()
			out[name] = data
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteFile uploads data as the named object, replacing any existing one.
func (s *Store) WriteFile(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{})
	if err != nil {
		return Translate(name, err)
	}
	return nil
}

// Remove deletes the named object. Removing a missing object is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{}); err != nil {
		return Translate(name, err)
	}
	return nil
}

// Object is an open remote stream.
type Object struct {
	obj  *minio.Object
	name string
	size int64
}

// Name returns the name provided to Open.
func (o *Object) Name() string {
	return o.name
}

// Size returns the object size reported when it was opened.
func (o *Object) Size() int64 {
	return o.size
}

// Read implements io.Reader. The end of the object is a plain io.EOF.
func (o *Object) Read(p []byte) (int, error) {
	n, err := o.obj.Read(p)
	if err != nil && err != io.EOF {
		return n, Translate(o.name, err)
	}
	return n, err
}

// ReadExact fills p completely or fails with EndOfStream.
func (o *Object) ReadExact(p []byte) (int, error) {
	n, err := io.ReadFull(o.obj, p)
	switch {
	case err == nil:
		return n, nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return n, pcsxerrors.NewShortRead(o.name, n, len(p))
	default:
		return n, Translate(o.name, err)
	}
}

// Seek implements io.Seeker.
func (o *Object) Seek(offset int64, whence int) (int64, error) {
	pos, err := o.obj.Seek(offset, whence)
	if err != nil {
		return pos, Translate(o.name, err)
	}
	return pos, nil
}

// Close implements io.Closer.
func (o *Object) Close() error {
	if err := o.obj.Close(); err != nil {
		return Translate(o.name, err)
	}
	return nil
}

var _ io.ReadSeekCloser = (*Object)(nil)
