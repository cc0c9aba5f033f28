// Package chanmesh provides a typed, intra-process channel-mesh allocator
// for a fixed group of cooperating workers sharing one process's memory.
//
// Given a worker count n, the allocator lazily wires a full mesh of typed
// FIFO edges: every worker obtains, per allocated channel, one pusher for
// each destination worker (itself included) and a single puller for the
// messages addressed to it.  Channel slots are created on first use and
// handed out exactly once per worker, so after allocation each endpoint is
// exclusively owned and requires no further synchronisation.
//
// End-users typically interact with the high-level Service façade exposed
// by the root package:
//
//	srv := chanmesh.New(chanmesh.WithWorkers(3))
//	group := srv.Allocators()
//	pushers, puller, _, err := process.Allocate[int](ctx, group[0])
//
// The correctness of the mesh relies on a lock-step protocol: every worker
// in the group must allocate the same number of channels, in the same
// order, with the same message type at each position.  Violations are
// reported eagerly via allocator.ErrTypeMismatch and
// allocator.ErrAlreadyConsumed.
//
// For more details see the individual sub-packages, in particular
// allocator/process which holds the shared channel table.
package chanmesh
