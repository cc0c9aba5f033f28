package allocator

// Format identifies a preferred wire encoding for channel payloads. It is
// only meaningful for allocators whose edges leave process memory;
// intra-process implementations always return a nil *Format, as messages
// are handed over by reference and never serialized.
type Format string

// Allocator represents one worker's handle into a group of peers wired
// together by a channel allocator.
type Allocator interface {
	// Index returns this worker's ordinal within the group, in [0, Peers).
	Index() int

	// Peers returns the total number of workers in the group.
	Peers() int
}
