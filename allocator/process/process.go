package process

import (
	"context"
	"reflect"
	"strconv"

	"github.com/viant/chanmesh/allocator"
	"github.com/viant/chanmesh/allocator/thread"
	"github.com/viant/chanmesh/service/messaging"
	"github.com/viant/chanmesh/tracing"
)

// Process is one worker's handle on the shared channel table. A Process is
// owned by a single worker goroutine; only the table it references is
// shared with peers.
type Process struct {
	inner     *thread.Thread
	index     int
	peers     int
	allocated int
	channels  *table
}

// NewVector builds count connected allocators referencing one freshly
// created, empty, shared channel table, ready to be distributed one per
// worker.
func NewVector(count int) []*Process {
	channels := newTable()
	group := make([]*Process, count)
	for index := range group {
		group[index] = &Process{
			inner:    thread.New(),
			index:    index,
			peers:    count,
			channels: channels,
		}
	}
	return group
}

// Index returns this worker's ordinal within the group.
func (p *Process) Index() int { return p.index }

// Peers returns the total number of workers in the group.
func (p *Process) Peers() int { return p.peers }

// Inner returns the wrapped single-worker allocator.
func (p *Process) Inner() *thread.Thread { return p.inner }

// Allocated returns how many channels this handle has allocated so far,
// which is also the table position its next allocation will consume.
func (p *Process) Allocated() int { return p.allocated }

// Topology returns a snapshot of the shared channel table's slot metadata.
func (p *Process) Topology() []SlotInfo { return p.channels.snapshot() }

// Allocate hands the calling worker its typed endpoints for the next
// channel slot: one pusher per destination worker (the caller included)
// and the single puller receiving messages addressed to the caller. The
// slot is created by whichever worker reaches it first; every worker of
// the group must call Allocate the same number of times, in the same
// order, with the same message type at each position. The returned
// endpoints are exclusively owned by the caller; the format hint is
// always nil for intra-process channels.
func Allocate[T any](ctx context.Context, p *Process) ([]messaging.Push[T], messaging.Pull[T], *allocator.Format, error) {
	requested := reflect.TypeOf((*T)(nil)).Elem()
	_, span := tracing.StartSpan(ctx, "allocator.process.allocate", "INTERNAL")
	span.WithAttributes(map[string]string{
		"mesh.worker": strconv.Itoa(p.index),
		"mesh.peers":  strconv.Itoa(p.peers),
		"mesh.slot":   strconv.Itoa(p.allocated),
		"mesh.type":   requested.String(),
	})
	pushers, puller, err := take[T](p, requested)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, nil, nil, err
	}
	result := make([]messaging.Push[T], len(pushers))
	for i := range pushers {
		result[i] = pushers[i]
	}
	return result, puller, nil, nil
}

// ensure Process implements the allocator contract
var _ allocator.Allocator = (*Process)(nil)
