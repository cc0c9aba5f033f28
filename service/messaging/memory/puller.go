package memory

import (
	"github.com/viant/chanmesh/service/messaging"
)

// Puller is the read end of a typed channel edge, holding the most recently
// received element.
type Puller[T any] struct {
	source  *Queue[T]
	current *T
}

// NewPuller creates a read end over the worker's own queue.
func NewPuller[T any](source *Queue[T]) *Puller[T] {
	return &Puller[T]{source: source}
}

// Pull performs one non-blocking receive attempt. On success the returned
// pointer addresses the freshly received element; on an empty or closed
// queue the current slot is cleared and nil is returned.
func (p *Puller[T]) Pull() *T {
	if element, ok := p.source.TryPop(); ok {
		p.current = &element
	} else {
		p.current = nil
	}
	return p.current
}

// ensure Puller implements messaging.Pull
var _ messaging.Pull[any] = (*Puller[any])(nil)
