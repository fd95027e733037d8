// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/matshell/matrix"
)

const (
	opNew        = "New"
	opInsert     = "Insert"
	opFindByName = "FindByName"
	opAt         = "At"
)

// Entry is one occupied slot in a Registry snapshot.
type Entry struct {
	Slot   int
	Matrix *matrix.Matrix
}

// Registry is a fixed-capacity slot array owning matrices.
//   - slots[i] is nil (empty) or the sole owner of one matrix.
//   - cursor counts inserts since construction; the next slot is cursor%len(slots).
type Registry struct {
	slots   []*matrix.Matrix
	cursor  uint64
	live    int
	logger  *slog.Logger
	metrics *Metrics
}

// New returns an empty Registry with capacity slots and cursor 0.
//
// Errors: ErrBadCapacity, or a prometheus registration error when
// WithMetrics is given a Registerer that already holds these collectors.
func New(capacity int, opts ...Option) (*Registry, error) {
	if capacity <= 0 {
		return nil, registryErrorf(opNew, fmt.Errorf("%d: %w", capacity, ErrBadCapacity))
	}
	o := gatherOptions(opts)
	r := &Registry{
		slots:   make([]*matrix.Matrix, capacity),
		logger:  o.logger,
		metrics: newMetrics(),
	}
	if o.registerer != nil {
		if err := r.metrics.register(o.registerer); err != nil {
			return nil, registryErrorf(opNew, err)
		}
	}

	return r, nil
}

// Insert installs m at slot cursor%capacity and advances the cursor.
// MAIN DESCRIPTION:
//   - Insert-with-eviction: a previous occupant of the slot is released.
//
// Implementation:
//   - Stage 1: reject nil, released or already-owned matrices.
//   - Stage 2: compute the slot; release and count any occupant.
//   - Stage 3: install m, increment cursor, return the slot.
//
// Errors: ErrNilEntity, matrix.ErrReleased, ErrAlreadyOwned.
// Complexity: O(capacity) for the ownership scan.
func (r *Registry) Insert(m *matrix.Matrix) (int, error) {
	if m == nil {
		return 0, registryErrorf(opInsert, ErrNilEntity)
	}
	if m.Released() {
		return 0, registryErrorf(opInsert, matrix.ErrReleased)
	}
	if slot, ok := r.slotOf(m); ok {
		return 0, registryErrorf(opInsert, fmt.Errorf("%q in slot %d: %w", m.Name(), slot, ErrAlreadyOwned))
	}

	slot := int(r.cursor % uint64(len(r.slots)))
	if old := r.slots[slot]; old != nil {
		r.logger.Debug("registry: evicting matrix", "slot", slot, "name", old.Name())
		old.Release()
		r.live--
		r.metrics.Evictions.Inc()
	}
	r.slots[slot] = m
	r.live++
	r.cursor++
	r.metrics.Inserts.Inc()
	r.metrics.Live.Set(float64(r.live))

	return slot, nil
}

// FindByName returns the lowest slot whose matrix is named exactly name.
//
// Errors: ErrNotFound when name is empty, the registry is empty, or no slot
// matches.
// Complexity: O(capacity).
func (r *Registry) FindByName(name string) (int, error) {
	if name == "" {
		r.metrics.lookup(false)
		return 0, registryErrorf(opFindByName, fmt.Errorf("empty name: %w", ErrNotFound))
	}
	if r.live == 0 {
		r.metrics.lookup(false)
		return 0, registryErrorf(opFindByName, fmt.Errorf("%q: registry empty: %w", name, ErrNotFound))
	}
	for i, m := range r.slots {
		if m != nil && m.Name() == name {
			r.metrics.lookup(true)
			return i, nil
		}
	}
	r.metrics.lookup(false)

	return 0, registryErrorf(opFindByName, fmt.Errorf("%q: %w", name, ErrNotFound))
}

// Lookup returns the matrix FindByName resolves name to.
func (r *Registry) Lookup(name string) (*matrix.Matrix, error) {
	slot, err := r.FindByName(name)
	if err != nil {
		return nil, err
	}

	return r.slots[slot], nil
}

// At returns the matrix in slot.
// Errors: ErrSlotRange, ErrNotFound (empty slot).
func (r *Registry) At(slot int) (*matrix.Matrix, error) {
	if slot < 0 || slot >= len(r.slots) {
		return nil, registryErrorf(opAt, fmt.Errorf("%d: %w", slot, ErrSlotRange))
	}
	if r.slots[slot] == nil {
		return nil, registryErrorf(opAt, fmt.Errorf("slot %d empty: %w", slot, ErrNotFound))
	}

	return r.slots[slot], nil
}

// Teardown releases every occupied slot and empties the registry. Calling it
// again finds nothing to release. The cursor is left untouched.
func (r *Registry) Teardown() {
	released := 0
	for i, m := range r.slots {
		if m == nil {
			continue
		}
		m.Release()
		r.slots[i] = nil
		released++
	}
	r.live = 0
	r.metrics.TeardownReleases.Add(float64(released))
	r.metrics.Live.Set(0)
	if released > 0 {
		r.logger.Debug("registry: teardown", "released", released)
	}
}

// Entries returns the occupied slots in ascending order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.live)
	for i, m := range r.slots {
		if m != nil {
			out = append(out, Entry{Slot: i, Matrix: m})
		}
	}

	return out
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int { return r.live }

// Cap returns the slot count.
func (r *Registry) Cap() int { return len(r.slots) }

// Cursor returns the number of successful inserts so far.
func (r *Registry) Cursor() uint64 { return r.cursor }

// Metrics returns the collectors updated by this registry.
func (r *Registry) Metrics() *Metrics { return r.metrics }

func (r *Registry) slotOf(m *matrix.Matrix) (int, bool) {
	for i, s := range r.slots {
		if s == m {
			return i, true
		}
	}

	return 0, false
}
