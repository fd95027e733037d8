// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeaderOpen  = "\nMatrix Contents ("
	_fmtHeaderClose = "):\n"
	_fmtDimOpen     = "DIM = ("
	_fmtDimSep      = ","
	_fmtDimClose    = ")\n"
	_fmtSep         = " "
	_fmtRowClose    = "\n"
	_fmtTrailer     = "\n"
)

// Display writes the human-readable dump of m to w:
//
//	<blank line>
//	Matrix Contents (<name>):
//	DIM = (<rows>,<cols>)
//	v v v ... (one line per row, each value followed by a space)
//	<blank line>
//
// It is a pure read; ErrNilMatrix or ErrReleased are returned for bad operands.
func Display(w io.Writer, m *Matrix) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opDisplay, err)
	}
	_, err := io.WriteString(w, m.render())

	return err
}

// String renders the same dump as Display. A released matrix renders its
// header only.
func (m *Matrix) String() string {
	return m.render()
}

func (m *Matrix) render() string {
	var b strings.Builder
	b.WriteString(_fmtHeaderOpen)
	b.WriteString(m.name)
	b.WriteString(_fmtHeaderClose)
	b.WriteString(_fmtDimOpen)
	b.WriteString(strconv.FormatUint(uint64(m.rows), 10))
	b.WriteString(_fmtDimSep)
	b.WriteString(strconv.FormatUint(uint64(m.cols), 10))
	b.WriteString(_fmtDimClose)

	if !m.released {
		cols := int(m.cols)
		for i := 0; i < int(m.rows); i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				b.WriteString(strconv.FormatUint(uint64(m.data[base+j]), 10))
				b.WriteString(_fmtSep)
			}
			b.WriteString(_fmtRowClose)
		}
	}
	b.WriteString(_fmtTrailer)

	return b.String()
}
