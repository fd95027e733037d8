// Package codec persists a matrix.Matrix in a fixed binary layout and
// reconstructs it.
//
// Layout (multi-byte fields in host byte order, binary.NativeEndian):
//
//	name_length  uint32             len(name)+1, at most matrix.NameCapacity
//	name_bytes   name_length bytes  name followed by one NUL
//	rows         uint32
//	cols         uint32
//	elements     rows*cols uint32   row-major
//	sentinel     1 byte             0xFF
//
// Writer and reader agree on byte order; files are not promised to be portable
// across architectures of different endianness.
//
// Encoder and Decoder are the structured fixed-field writer and reader;
// WriteFile and ReadFile wrap them with file handling. Every I/O failure is
// reported as *IoError carrying a classified Reason; errors.Is(err, ErrIO)
// matches any of them.
package codec
