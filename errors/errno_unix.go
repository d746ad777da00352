//go:build unix

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoVariants maps POSIX error numbers to variants. Codes missing here are
// BadStream.
var errnoVariants = map[int]Variant{
	int(unix.ENOENT):  FileNotFound,
	int(unix.ENOTDIR): FileNotFound,

	int(unix.EACCES): AccessDenied,
	int(unix.EPERM):  AccessDenied,
	int(unix.EROFS):  AccessDenied,

	int(unix.EEXIST):       CannotCreateStream,
	int(unix.EMFILE):       CannotCreateStream,
	int(unix.ENFILE):       CannotCreateStream,
	int(unix.ENAMETOOLONG): CannotCreateStream,
	int(unix.EISDIR):       CannotCreateStream,

	int(unix.EIO):    BadStream,
	int(unix.EPIPE):  BadStream,
	int(unix.EBADF):  BadStream,
	int(unix.EINVAL): BadStream,
	int(unix.ENOSPC): BadStream,
}

func errnoName(code int) string {
	return unix.ErrnoName(syscall.Errno(code))
}

func errnoDescription(code int) string {
	return syscall.Errno(code).Error()
}

// errnoFrom extracts a non-zero errno from err's chain.
func errnoFrom(err error) (int, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno), true
	}
	return 0, false
}
