package scanner

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Reason classifies why a scan root could not be read.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonNotFound
	ReasonPermissionDenied
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonPermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// OpError wraps a filesystem failure on a scan root with a stable reason code.
type OpError struct {
	Path     string
	Reason   Reason
	Original error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Original)
}

func (e *OpError) Unwrap() error {
	return e.Original
}

// CategorizeRootError maps an error from reading a scan root to an OpError.
func CategorizeRootError(path string, err error) *OpError {
	reason := ReasonUnknown

	switch {
	case os.IsNotExist(err):
		reason = ReasonNotFound
	case os.IsPermission(err):
		reason = ReasonPermissionDenied
	default:
		var errno syscall.Errno
		if errors.As(err, &errno) {
			switch errno {
			case syscall.ENOENT:
				reason = ReasonNotFound
			case syscall.EACCES, syscall.EPERM:
				reason = ReasonPermissionDenied
			}
		}
	}

	return &OpError{Path: path, Reason: reason, Original: err}
}

// IsNotFound reports whether err is a scan failure on a missing root.
func IsNotFound(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Reason == ReasonNotFound
}

// IsPermissionDenied reports whether err is a scan failure on an
// unreadable root.
func IsPermissionDenied(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Reason == ReasonPermissionDenied
}
