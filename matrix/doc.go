// Package matrix implements the named, dense uint32 matrix entity used by the
// shell and its registry.
//
// The matrix package provides:
//
//   - Matrix: a name, fixed dimensions and a row-major []uint32 buffer
//     (element (i,j) lives at offset i*cols+j).
//   - Lifecycle: New allocates a zeroed buffer; Release drops it. Any later
//     operation on a released Matrix returns ErrReleased.
//   - Elementwise operations: Add, Shift, Randomize, Duplicate and Equal.
//   - Display for the "Matrix Contents" dump printed by the shell.
//
// All operations validate their operands and return sentinel errors matched
// via errors.Is. Nothing in this package panics on user input.
//
// A Matrix is not safe for concurrent use.
package matrix
