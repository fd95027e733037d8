// SPDX-License-Identifier: MIT

// Package matrix: domain types and limits shared by the entity, its
// operations and the persistence layer. Errors live in errors.go.
package matrix

import (
	"fmt"
	"strings"
)

// NameCapacity bounds a matrix name in bytes, counting the terminator byte the
// on-disk format stores after it. A name holds at most NameCapacity-1 bytes.
const NameCapacity = 50

// MaxElements caps rows*cols for one matrix (1 GiB of uint32 storage).
// New fails with ErrAllocation above it instead of letting make() panic.
const MaxElements = 1 << 28

// Direction selects the bitwise shift direction used by Shift.
type Direction uint8

const (
	// ShiftLeft shifts every element towards the most significant bit.
	ShiftLeft Direction = iota + 1
	// ShiftRight shifts every element towards the least significant bit.
	ShiftRight
)

// String returns "left" or "right" (or "Direction(n)" for unknown values).
func (d Direction) String() string {
	switch d {
	case ShiftLeft:
		return "left"
	case ShiftRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps a shell token to a Direction.
// Accepted (case-insensitive): "l", "left", "r", "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return ShiftLeft, nil
	case "r", "right":
		return ShiftRight, nil
	default:
		return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrBadDirection)
	}
}

// Source is the pseudorandom generator consumed by Randomize.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint32() uint32
}
