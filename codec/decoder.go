// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/matshell/matrix"
)

const (
	opDecode       = "Decode"
	opDecodeHeader = "DecodeHeader"
	opUnmarshal    = "Unmarshal"
)

// elementChunk is the number of elements read per io.ReadFull call.
const elementChunk = 16 * 1024

// Decoder reads matrices from a stream in the fixed binary layout.
type Decoder struct {
	r       io.Reader
	path    string // reported in IoErrors when set by ReadFile
	scratch [fieldSize]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// DecodeHeader reads name_length, the name bytes, rows and cols.
//
// The name is the bytes before the first NUL (or all of them when there is
// none). A name_length above matrix.NameCapacity is rejected before any name
// bytes are read.
//
// Errors: *IoError (ReasonShortRead on truncation), ErrNameLength.
func (d *Decoder) DecodeHeader() (Header, error) {
	var h Header
	var err error

	if h.NameLength, err = d.readUint32("name_length"); err != nil {
		return Header{}, err
	}
	if h.NameLength > matrix.NameCapacity {
		return Header{}, codecErrorf(opDecodeHeader,
			fmt.Errorf("name_length %d > %d: %w: %w", h.NameLength, matrix.NameCapacity, ErrNameLength, matrix.ErrNameTooLong))
	}
	name := make([]byte, h.NameLength)
	if err = d.readFull("name", name); err != nil {
		return Header{}, err
	}
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	h.Name = string(name)

	if h.Rows, err = d.readUint32("rows"); err != nil {
		return Header{}, err
	}
	if h.Cols, err = d.readUint32("cols"); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Decode reads one record and returns the reconstructed matrix.
// Implementation:
//   - Stage 1: DecodeHeader.
//   - Stage 2: matrix.New(name, rows, cols); its errors propagate unchanged.
//   - Stage 3: read exactly rows*cols elements in chunks and load them.
//
// The trailing sentinel is not consumed. On any failure after Stage 2 the
// partially built matrix is released before returning.
func (d *Decoder) Decode() (*matrix.Matrix, error) {
	h, err := d.DecodeHeader()
	if err != nil {
		return nil, err
	}
	m, err := matrix.New(h.Name, h.Rows, h.Cols)
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}
	data, err := d.readElements(m.Len())
	if err != nil {
		m.Release()
		return nil, err
	}
	if err = m.Load(data); err != nil {
		m.Release()
		return nil, codecErrorf(opDecode, err)
	}

	return m, nil
}

// Unmarshal decodes a single record from b.
func Unmarshal(b []byte) (*matrix.Matrix, error) {
	m, err := NewDecoder(bytes.NewReader(b)).Decode()
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}

	return m, nil
}

// readElements reads n uint32 values.
func (d *Decoder) readElements(n int) ([]uint32, error) {
	data := make([]uint32, n)
	chunk := make([]byte, fieldSize*min(n, elementChunk))
	for off := 0; off < n; {
		k := min(n-off, elementChunk)
		raw := chunk[:fieldSize*k]
		if err := d.readFull("elements", raw); err != nil {
			return nil, err
		}
		for i := 0; i < k; i++ {
			data[off+i] = byteOrder.Uint32(raw[fieldSize*i:])
		}
		off += k
	}

	return data, nil
}

func (d *Decoder) readUint32(field string) (uint32, error) {
	if err := d.readFull(field, d.scratch[:]); err != nil {
		return 0, err
	}

	return byteOrder.Uint32(d.scratch[:]), nil
}

// readFull fills p or returns an IoError naming the field.
func (d *Decoder) readFull(field string, p []byte) error {
	if _, err := io.ReadFull(d.r, p); err != nil {
		return newIoError("read "+field, d.path, err)
	}

	return nil
}
