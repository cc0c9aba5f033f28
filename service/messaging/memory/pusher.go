package memory

import (
	"github.com/viant/chanmesh/service/messaging"
)

// Pusher is the write end of a typed channel edge bound to one destination
// worker's queue.
type Pusher[T any] struct {
	target *Queue[T]
}

// NewPusher creates a write end over the destination queue.
func NewPusher[T any](target *Queue[T]) *Pusher[T] {
	return &Pusher[T]{target: target}
}

// Push moves the element into the destination queue; a nil element is a
// flush/no-message no-op.
func (p *Pusher[T]) Push(element *T) {
	if element == nil {
		return
	}
	p.target.Push(*element)
}

// Clone returns a new handle sharing the same underlying write end, so the
// same logical destination can be pushed to from multiple owners.
func (p *Pusher[T]) Clone() *Pusher[T] {
	return &Pusher[T]{target: p.target}
}

// ensure Pusher implements messaging.Push
var _ messaging.Push[any] = (*Pusher[any])(nil)
