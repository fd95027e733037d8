// SPDX-License-Identifier: MIT
// Package codec: error set.
// Sentinels are matched via errors.Is; *IoError is matched via errors.As and
// also satisfies errors.Is(err, ErrIO).

package codec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

var (
	// ErrIO matches every *IoError via errors.Is.
	ErrIO = errors.New("codec: i/o failure")

	// ErrNameLength is returned when a decoded name_length exceeds
	// matrix.NameCapacity. It is joined with matrix.ErrNameTooLong.
	ErrNameLength = errors.New("codec: name length out of bounds")
)

// codecErrorf wraps an underlying error with the given operation tag.
func codecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Reason classifies the underlying cause of an IoError.
type Reason uint8

const (
	// ReasonOther is any failure not covered below.
	ReasonOther Reason = iota
	// ReasonPermission means access was denied (EACCES/EPERM).
	ReasonPermission
	// ReasonInUse means the resource is busy or already in use (EADDRINUSE/EBUSY).
	ReasonInUse
	// ReasonBadDescriptor means the descriptor was invalid or closed (EBADF).
	ReasonBadDescriptor
	// ReasonExists means the target already exists (EEXIST).
	ReasonExists
	// ReasonNotExist means the target does not exist (ENOENT).
	ReasonNotExist
	// ReasonShortRead means the stream ended before a field was complete.
	ReasonShortRead
	// ReasonShortWrite means fewer bytes were written than requested.
	ReasonShortWrite
)

var reasonNames = [...]string{
	ReasonOther:         "i/o error",
	ReasonPermission:    "permission denied",
	ReasonInUse:         "already in use",
	ReasonBadDescriptor: "bad file descriptor",
	ReasonExists:        "file exists",
	ReasonNotExist:      "file does not exist",
	ReasonShortRead:     "short read",
	ReasonShortWrite:    "short write",
}

// String returns a short human-readable description.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// IoError reports a failed open, read, write or close.
//   - Op is the failing step ("open", "read <field>", "write", "close").
//   - Path is the file involved, empty for plain streams.
//   - Reason is the classified cause; Err is the underlying error.
type IoError struct {
	Op     string
	Path   string
	Reason Reason
	Err    error
}

// Error implements error.
func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("codec: %s: %s: %v", e.Op, e.Reason, e.Err)
	}

	return fmt.Sprintf("codec: %s %s: %s: %v", e.Op, e.Path, e.Reason, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IoError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any IoError.
func (e *IoError) Is(target error) bool { return target == ErrIO }

// newIoError classifies err and builds an IoError.
func newIoError(op, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Reason: classify(err), Err: err}
}

// classify maps an underlying error onto a Reason. Order matters: short
// transfers first, then the errno classes.
func classify(err error) Reason {
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return ReasonShortRead
	case errors.Is(err, io.ErrShortWrite):
		return ReasonShortWrite
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermission
	case errors.Is(err, syscall.EADDRINUSE), errors.Is(err, syscall.EBUSY):
		return ReasonInUse
	case errors.Is(err, syscall.EBADF), errors.Is(err, os.ErrClosed):
		return ReasonBadDescriptor
	case errors.Is(err, fs.ErrExist):
		return ReasonExists
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotExist
	default:
		return ReasonOther
	}
}
