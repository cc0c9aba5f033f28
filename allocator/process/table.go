package process

import (
	"reflect"
	"sync"
	"time"

	"github.com/viant/chanmesh/allocator"
	"github.com/viant/chanmesh/internal/clock"
	"github.com/viant/chanmesh/internal/idgen"
	"github.com/viant/chanmesh/service/messaging/memory"
)

// table is the process-wide registry of channel slots shared by every
// Process of one group. Slot i corresponds to the i-th allocation call made
// (in lock-step) by each worker; the association is positional, not typed,
// so each slot carries the reflect.Type it was created with and allocation
// validates it against the consumer's type parameter.
type table struct {
	mu    sync.Mutex
	slots []*slot
}

func newTable() *table {
	return &table{}
}

// slot holds one type-erased channel-mesh record: per worker, that worker's
// pushers to every destination paired with its own puller, extractable at
// most once.
type slot struct {
	id      string
	rType   reflect.Type
	created time.Time
	takes   int
	entries any // []*entry[T] for the slot's message type
}

// entry is one worker's portion of a slot together with its consumption
// state.
type entry[T any] struct {
	pushers  []*memory.Pusher[T]
	puller   *memory.Puller[T]
	consumed bool
}

// newSlot builds the whole mesh for one slot: one unbounded FIFO per
// destination worker, write ends cloned to every source. All peers' queues
// exist before any worker can extract its portion.
func newSlot[T any](peers int, rType reflect.Type) *slot {
	queues := make([]*memory.Queue[T], peers)
	writeEnds := make([]*memory.Pusher[T], peers)
	for dest := range queues {
		queues[dest] = memory.NewQueue[T]()
		writeEnds[dest] = memory.NewPusher(queues[dest])
	}
	entries := make([]*entry[T], peers)
	for worker := range entries {
		pushers := make([]*memory.Pusher[T], peers)
		for dest := range writeEnds {
			pushers[dest] = writeEnds[dest].Clone()
		}
		entries[worker] = &entry[T]{
			pushers: pushers,
			puller:  memory.NewPuller(queues[worker]),
		}
	}
	return &slot{
		id:      idgen.New(),
		rType:   rType,
		created: clock.Now(),
		entries: entries,
	}
}

// take hands the calling worker its portion of the next slot, creating the
// slot when this worker is the first of the group to reach it. The table
// lock spans slot creation and extraction only; it is never held across
// message transfer.
func take[T any](p *Process, requested reflect.Type) ([]*memory.Pusher[T], *memory.Puller[T], error) {
	t := p.channels
	t.mu.Lock()
	defer t.mu.Unlock()

	if p.allocated == len(t.slots) {
		t.slots = append(t.slots, newSlot[T](p.peers, requested))
	}
	s := t.slots[p.allocated]
	if s.rType != requested {
		return nil, nil, allocator.NewTypeMismatchError(p.allocated, s.id, s.rType, requested)
	}
	entries, ok := s.entries.([]*entry[T])
	if !ok {
		return nil, nil, allocator.NewTypeMismatchError(p.allocated, s.id, s.rType, requested)
	}
	e := entries[p.index]
	if e.consumed {
		return nil, nil, allocator.NewConsumedError(p.allocated, s.id, p.index)
	}
	e.consumed = true
	s.takes++
	p.allocated++
	return e.pushers, e.puller, nil
}

// SlotInfo is a point-in-time description of one channel slot, used for
// topology reporting.
type SlotInfo struct {
	ID       string
	Position int
	Type     reflect.Type
	Created  time.Time
	Takes    int
}

// snapshot copies the table's slot metadata under the table lock.
func (t *table) snapshot() []SlotInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]SlotInfo, len(t.slots))
	for i, s := range t.slots {
		result[i] = SlotInfo{
			ID:       s.id,
			Position: i,
			Type:     s.rType,
			Created:  s.created,
			Takes:    s.takes,
		}
	}
	return result
}
