//go:build windows

package errors

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// errnoVariants maps Win32 error codes to variants. Codes missing here are
// BadStream.
var errnoVariants = map[int]Variant{
	int(windows.ERROR_FILE_NOT_FOUND): FileNotFound,
	int(windows.ERROR_PATH_NOT_FOUND): FileNotFound,
	int(windows.ERROR_INVALID_DRIVE):  FileNotFound,

	int(windows.ERROR_ACCESS_DENIED):     AccessDenied,
	int(windows.ERROR_SHARING_VIOLATION): AccessDenied,
	int(windows.ERROR_WRITE_PROTECT):     AccessDenied,

	int(windows.ERROR_FILE_EXISTS):         CannotCreateStream,
	int(windows.ERROR_ALREADY_EXISTS):      CannotCreateStream,
	int(windows.ERROR_TOO_MANY_OPEN_FILES): CannotCreateStream,
	int(windows.ERROR_INVALID_NAME):        CannotCreateStream,

	int(windows.ERROR_HANDLE_EOF): EndOfStream,

	int(windows.ERROR_BROKEN_PIPE): BadStream,
	int(windows.ERROR_DISK_FULL):   BadStream,
}

var errnoNames = map[int]string{
	int(windows.ERROR_FILE_NOT_FOUND):      "ERROR_FILE_NOT_FOUND",
	int(windows.ERROR_PATH_NOT_FOUND):      "ERROR_PATH_NOT_FOUND",
	int(windows.ERROR_INVALID_DRIVE):       "ERROR_INVALID_DRIVE",
	int(windows.ERROR_ACCESS_DENIED):       "ERROR_ACCESS_DENIED",
	int(windows.ERROR_SHARING_VIOLATION):   "ERROR_SHARING_VIOLATION",
	int(windows.ERROR_WRITE_PROTECT):       "ERROR_WRITE_PROTECT",
	int(windows.ERROR_FILE_EXISTS):         "ERROR_FILE_EXISTS",
	int(windows.ERROR_ALREADY_EXISTS):      "ERROR_ALREADY_EXISTS",
	int(windows.ERROR_TOO_MANY_OPEN_FILES): "ERROR_TOO_MANY_OPEN_FILES",
	int(windows.ERROR_INVALID_NAME):        "ERROR_INVALID_NAME",
	int(windows.ERROR_HANDLE_EOF):          "ERROR_HANDLE_EOF",
	int(windows.ERROR_BROKEN_PIPE):         "ERROR_BROKEN_PIPE",
	int(windows.ERROR_DISK_FULL):           "ERROR_DISK_FULL",
}

func errnoName(code int) string {
	return errnoNames[code]
}

func errnoDescription(code int) string {
	return syscall.Errno(code).Error()
}

// errnoFrom extracts a non-zero Win32 error code from err's chain.
func errnoFrom(err error) (int, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno), true
	}
	return 0, false
}
