// Package registry owns the live matrices of a shell session in a fixed
// number of slots.
//
// Insertion claims slot cursor%capacity via a rotating cursor that starts at 0
// and only ever grows, releasing whatever matrix previously owned that slot.
// Lookup scans slots in ascending order and returns the first exact name match,
// so duplicate names are permitted and the lowest slot wins.
//
// A Registry is single-threaded by contract: it holds no locks and must not
// be shared between goroutines.
package registry
