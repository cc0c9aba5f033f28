package allocator

import (
	"errors"
	"fmt"
	"reflect"
)

// Allocation failures are protocol violations by the calling code, not
// transient conditions: none of them is retried and callers are expected to
// treat them as fatal for the worker. Sentinel variables allow reliable
// detection via errors.Is instead of brittle string comparisons.

var (
	// ErrTypeMismatch indicates that a channel slot was created with one
	// message type and consumed with another – the workers of the group
	// disagree on allocation order or types.
	ErrTypeMismatch = errors.New("allocator: channel type mismatch")

	// ErrAlreadyConsumed indicates that a worker's portion of a channel
	// slot was extracted more than once.
	ErrAlreadyConsumed = errors.New("allocator: channel endpoints already consumed")
)

// NewTypeMismatchError details which slot disagrees and on what types.
func NewTypeMismatchError(position int, slotID string, created, requested reflect.Type) error {
	return fmt.Errorf("%w: slot %d (%s) was created for %s, requested %s; all workers must allocate in the same order with the same types",
		ErrTypeMismatch, position, slotID, created, requested)
}

// NewConsumedError details which worker attempted a second extraction.
func NewConsumedError(position int, slotID string, worker int) error {
	return fmt.Errorf("%w: slot %d (%s), worker %d", ErrAlreadyConsumed, position, slotID, worker)
}
