// Package allocator defines the capability contract shared by channel
// allocators.  An allocator represents one worker's membership in a group
// of peers and hands the worker its typed channel endpoints.
//
// Go methods cannot be generic, so typed allocation is not part of the
// Allocator interface; each implementation exposes a package-level generic
// function instead (process.Allocate, thread.Allocate) with a common
// shape:
//
//	pushers, puller, format, err := process.Allocate[T](ctx, p)
//
// pushers is indexed by destination worker, puller receives the messages
// addressed to the caller, and format is a serialization hint that
// intra-process implementations leave nil.
package allocator
