package messaging

// Push represents the write half of one directed, typed channel edge.
type Push[T any] interface {
	// Push moves the element into the edge. A nil element is a no-op used
	// by callers as a flush/no-message signal. Enqueueing is unbounded and
	// never blocks; pushing on a closed edge panics, as the peer is not
	// expected to disappear while senders remain.
	Push(element *T)
}

// Pull represents the read half of one typed channel edge.
type Pull[T any] interface {
	// Pull performs exactly one non-blocking receive attempt. It returns
	// the received element, or nil when the edge is currently empty or
	// closed. Callers own the responsibility of repeated polling; an empty
	// poll has no side effects.
	Pull() *T
}
