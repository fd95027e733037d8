// SPDX-License-Identifier: MIT

package codec

import (
	"io"
	"io/fs"
	"os"

	"github.com/katalvlaran/matshell/matrix"
)

// FileMode is the permission used when WriteFile creates a file.
const FileMode fs.FileMode = 0o644

const opWriteFile = "WriteFile"

// WriteFile writes m to path, creating or truncating it.
// MAIN DESCRIPTION:
//   - Encode first, then open with O_CREATE|O_RDWR|O_TRUNC and write the whole
//     record in one Write call.
//
// Behavior highlights:
//   - An invalid matrix never truncates an existing file (encoding happens first).
//   - The file is closed on every path; a close failure is reported.
//
// Errors: matrix.ErrNilMatrix/ErrReleased, *IoError for open/write/close.
func WriteFile(path string, m *matrix.Matrix) error {
	buf, err := Marshal(m)
	if err != nil {
		return codecErrorf(opWriteFile, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, FileMode)
	if err != nil {
		return newIoError("open", path, err)
	}
	n, err := f.Write(buf)
	if err != nil {
		_ = f.Close()
		return newIoError("write", path, err)
	}
	if n != len(buf) {
		_ = f.Close()
		return &IoError{Op: "write", Path: path, Reason: ReasonShortWrite, Err: io.ErrShortWrite}
	}
	if err = f.Close(); err != nil {
		return newIoError("close", path, err)
	}

	return nil
}

// ReadFile opens path read-only and decodes one matrix from it.
// The file is closed on every path; the matrix is released if close fails.
//
// Errors: *IoError for open/read/close, ErrNameLength, and any error
// matrix.New raises for the decoded name or shape.
func ReadFile(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIoError("open", path, err)
	}
	d := &Decoder{r: f, path: path}
	m, err := d.Decode()
	cerr := f.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		m.Release()
		return nil, newIoError("close", path, cerr)
	}

	return m, nil
}
