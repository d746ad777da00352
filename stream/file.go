package stream

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// File is an open stream. It stores the name given to Open/Create so errors
// name the file the same way the caller did, whatever the backend reports.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Name returns the name provided to Open/Create.
func (f *File) Name() string {
	return f.name
}

// Read implements io.Reader. The end of the file is reported as a plain
// io.EOF so the io helpers keep working; other failures are classified.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err != nil && err != io.EOF {
		return n, pcsxerrors.Classify(f.name, err)
	}
	return n, err
}

// ReadExact fills p completely. Running out of data before p is full is an
// EndOfStream error; callers that treat the end as a control signal can test
// for it with errors.Is(err, io.EOF).
func (f *File) ReadExact(p []byte) (int, error) {
	n, err := io.ReadFull(f.file, p)
	switch {
	case err == nil:
		return n, nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return n, pcsxerrors.NewShortRead(f.name, n, len(p))
	default:
		return n, pcsxerrors.Classify(f.name, err)
	}
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, pcsxerrors.Classify(f.name, err)
	}
	return n, nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.file.Seek(offset, whence)
	if err != nil {
		return pos, pcsxerrors.Classify(f.name, err)
	}
	return pos, nil
}

// Stat returns metadata for the open file.
func (f *File) Stat() (fs.FileInfo, error) {
	info, err := f.fs.Stat(normalize(f.name))
	if err != nil {
		return nil, pcsxerrors.Classify(f.name, err)
	}
	return info, nil
}

// Sync commits the file to stable storage. It is a no-op for backends without
// Sync, such as memfs.
func (f *File) Sync() error {
	syncer, ok := f.file.(interface{ Sync() error })
	if !ok {
		return nil
	}
	if err := syncer.Sync(); err != nil {
		return pcsxerrors.Classify(f.name, err)
	}
	return nil
}

// Close implements io.Closer.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return pcsxerrors.Classify(f.name, err)
	}
	return nil
}

var (
	_ fs.File       = (*File)(nil)
	_ io.ReadWriter = (*File)(nil)
	_ io.Seeker     = (*File)(nil)
)
