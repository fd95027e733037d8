// SPDX-License-Identifier: MIT
// Package registry: sentinel error set, matched via errors.Is.

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEntity is returned by Insert for a nil matrix.
	ErrNilEntity = errors.New("registry: nil entity")

	// ErrNotFound is returned when a name or slot holds no matrix.
	ErrNotFound = errors.New("registry: matrix not found")

	// ErrAlreadyOwned is returned by Insert when the matrix already occupies a slot.
	ErrAlreadyOwned = errors.New("registry: matrix already owned by a slot")

	// ErrBadCapacity is returned by New for capacity <= 0.
	ErrBadCapacity = errors.New("registry: capacity must be > 0")

	// ErrSlotRange is returned by At for a slot outside [0, capacity).
	ErrSlotRange = errors.New("registry: slot out of range")
)

// registryErrorf wraps an underlying error with the given operation tag.
func registryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
