// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"

	"github.com/katalvlaran/matshell/matrix"
)

// Sentinel is the marker byte appended after the elements.
const Sentinel byte = 0xFF

// fieldSize is the width of every fixed uint32 field on disk.
const fieldSize = 4

// byteOrder is the host order; encoder and decoder share it.
var byteOrder = binary.NativeEndian

// Header holds the fixed fields that precede the element block.
type Header struct {
	NameLength uint32 // len(Name)+1, terminator included
	Name       string
	Rows       uint32
	Cols       uint32
}

// HeaderOf describes m as it will be encoded.
func HeaderOf(m *matrix.Matrix) Header {
	return Header{
		NameLength: uint32(len(m.Name()) + 1),
		Name:       m.Name(),
		Rows:       m.Rows(),
		Cols:       m.Cols(),
	}
}

// Elements returns rows*cols as a 64-bit count.
func (h Header) Elements() uint64 { return uint64(h.Rows) * uint64(h.Cols) }

// EncodedSize returns the total byte length of a record with this header:
// name_length + name + rows + cols + elements + sentinel.
func (h Header) EncodedSize() uint64 {
	return fieldSize + uint64(h.NameLength) + 2*fieldSize + fieldSize*h.Elements() + 1
}
