package stream

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// FS opens streams on a billy.Filesystem. Every error it returns is a
// pcsxerrors.Exception carrying the name passed by the caller.
type FS struct {
	bfs billy.Filesystem
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs}
}

// NewLocal returns an FS rooted at the given directory of the host filesystem.
func NewLocal(root string) *FS {
	return New(osfs.New(root))
}

// NewMemory returns an empty in-memory FS.
func NewMemory() *FS {
	return New(memfs.New())
}

// Unwrap returns the underlying billy.Filesystem.
func (s *FS) Unwrap() billy.Filesystem {
	return s.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// Open opens the named file for reading.
func (s *FS) Open(name string) (*File, error) {
	f, err := s.bfs.Open(normalize(name))
	if err != nil {
		return nil, pcsxerrors.Classify(name, err)
	}
	return &File{file: f, fs: s.bfs, name: name}, nil
}

// Create creates or truncates the named file for writing.
func (s *FS) Create(name string) (*File, error) {
	f, err := s.bfs.Create(normalize(name))
	if err != nil {
		return nil, pcsxerrors.Classify(name, err)
	}
	return &File{file: f, fs: s.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (s *FS) OpenFile(name string, flag int, perm fs.FileMode) (*File, error) {
	f, err := s.bfs.OpenFile(normalize(name), flag, perm)
	if err != nil {
		return nil, pcsxerrors.Classify(name, err)
	}
	return &File{file: f, fs: s.bfs, name: name}, nil
}

// ReadFile reads the named file and returns its contents.
func (s *FS) ReadFile(name string) ([]byte, error) {
	f, err := s.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f.file)
	if err != nil {
		return nil, pcsxerrors.Classify(name, err)
	}
	return data, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (s *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := s.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Stat returns file metadata for the named file.
func (s *FS) Stat(name string) (fs.FileInfo, error) {
	info, err := s.bfs.Stat(normalize(name))
	if err != nil {
		return nil, pcsxerrors.Classify(name, err)
	}
	return info, nil
}

// Exists reports whether the named file or directory exists.
// A missing file is not an error.
func (s *FS) Exists(name string) (bool, error) {
	_, err := s.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case pcsxerrors.Is(err, pcsxerrors.FileNotFound):
		return false, nil
	default:
		return false, err
	}
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (s *FS) MkdirAll(path string, perm fs.FileMode) error {
	if err := s.bfs.MkdirAll(normalize(path), perm); err != nil {
		return pcsxerrors.Classify(path, err)
	}
	return nil
}

// Remove removes the named file or empty directory.
func (s *FS) Remove(name string) error {
	if err := s.bfs.Remove(normalize(name)); err != nil {
		return pcsxerrors.Classify(name, err)
	}
	return nil
}
