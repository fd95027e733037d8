// SPDX-License-Identifier: MIT

package codec

import (
	"io"

	"github.com/katalvlaran/matshell/matrix"
)

const (
	opMarshal = "Marshal"
	opEncode  = "Encode"
)

// Encoder writes matrices to a stream in the fixed binary layout.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode serializes m into one contiguous buffer and writes it with a single
// Write call. A partial write is an IoError with ReasonShortWrite.
func (e *Encoder) Encode(m *matrix.Matrix) error {
	buf, err := Marshal(m)
	if err != nil {
		return codecErrorf(opEncode, err)
	}
	n, err := e.w.Write(buf)
	if err != nil {
		return newIoError("write", "", err)
	}
	if n != len(buf) {
		return &IoError{Op: "write", Reason: ReasonShortWrite, Err: io.ErrShortWrite}
	}

	return nil
}

// Marshal returns the encoded record of m.
// Implementation:
//   - Stage 1: validate m is live.
//   - Stage 2: size the buffer exactly (Header.EncodedSize).
//   - Stage 3: append header, elements, sentinel.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrReleased.
// Complexity: O(r*c).
func Marshal(m *matrix.Matrix) ([]byte, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, codecErrorf(opMarshal, err)
	}
	h := HeaderOf(m)
	buf := make([]byte, 0, h.EncodedSize())
	buf = appendHeader(buf, h)
	buf = appendElements(buf, m.Data())
	buf = append(buf, Sentinel)

	return buf, nil
}

// appendHeader appends name_length, name bytes + NUL, rows and cols.
func appendHeader(buf []byte, h Header) []byte {
	buf = byteOrder.AppendUint32(buf, h.NameLength)
	buf = append(buf, h.Name...)
	buf = append(buf, 0)
	buf = byteOrder.AppendUint32(buf, h.Rows)

	return byteOrder.AppendUint32(buf, h.Cols)
}

// appendElements appends the row-major element block.
func appendElements(buf []byte, data []uint32) []byte {
	for _, v := range data {
		buf = byteOrder.AppendUint32(buf, v)
	}

	return buf
}
