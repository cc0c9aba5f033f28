// Package thread implements the degenerate single-worker channel
// allocator. It backs the Inner() collaborator of the process allocator
// and is useful on its own for self-addressed channels.
package thread

import (
	"context"

	"github.com/viant/chanmesh/allocator"
	"github.com/viant/chanmesh/service/messaging"
	"github.com/viant/chanmesh/service/messaging/memory"
)

// Thread is a channel allocator for a group of exactly one worker. It
// carries no state: every allocation wires a fresh self-loop edge.
type Thread struct{}

// New creates a new single-worker allocator.
func New() *Thread {
	return &Thread{}
}

// Index returns this worker's ordinal, always 0.
func (t *Thread) Index() int { return 0 }

// Peers returns the group size, always 1.
func (t *Thread) Peers() int { return 1 }

// Allocate wires one self-addressed channel: a single pusher and the
// puller observing it. The context and format hint mirror the process
// allocator's signature; allocation never blocks and the hint is nil.
func Allocate[T any](ctx context.Context, t *Thread) ([]messaging.Push[T], messaging.Pull[T], *allocator.Format, error) {
	queue := memory.NewQueue[T]()
	return []messaging.Push[T]{memory.NewPusher(queue)}, memory.NewPuller(queue), nil, nil
}

// ensure Thread implements the allocator contract
var _ allocator.Allocator = (*Thread)(nil)
