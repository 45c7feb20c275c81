package queue

import "sync/atomic"

// shardCapacity is not referenced by BufferedVector: shards grow by append
// without a size limit and are merged into the result only by Finalize.
const shardCapacity = 1024

// BufferedVector is a concurrent append-only collector. Workers append to
// their own shard via PushBufferedAt (no synchronization) or directly to the
// shared tail via PushAtomic (a single relaxed fetch-add). Finalize flushes
// every shard into the shared backing array and must run at a barrier, after
// all workers have stopped appending.
//
// Used by ParallelPushRelabel to gather the next round's active-node list
// without contending on one slice append per push.
type BufferedVector[T any] struct {
	shared []T
	tail   atomic.Int64 // next free index into shared, advanced by PushAtomic
	shards [][]T        // per-worker local buffers
}

// NewBufferedVector allocates a BufferedVector with `workers` shards and a
// shared backing array sized for `capacityHint` entries.
func NewBufferedVector[T any](workers, capacityHint int) *BufferedVector[T] {
	return &BufferedVector[T]{
		shared: make([]T, capacityHint),
		shards: make([][]T, workers),
	}
}

// PushBufferedAt appends v to worker `worker`'s local shard. Not safe to
// call concurrently for the same worker index; different worker indices
// never contend.
func (b *BufferedVector[T]) PushBufferedAt(worker int, v T) {
	b.shards[worker] = append(b.shards[worker], v)
}

// PushAtomic appends v directly to the shared tail using a relaxed
// fetch-add on the tail index; safe to call from any number of goroutines
// concurrently, racing only on the index reservation, never on the slot
// itself (each reserved index is written by exactly one caller).
func (b *BufferedVector[T]) PushAtomic(v T) {
	idx := b.tail.Add(1) - 1
	if int(idx) >= len(b.shared) {
		b.growTo(int(idx) + 1)
	}
	b.shared[idx] = v
}

func (b *BufferedVector[T]) growTo(n int) {
	if n <= len(b.shared) {
		return
	}
	grown := make([]T, n)
	copy(grown, b.shared)
	b.shared = grown
}

// Finalize flushes every worker's local shard into the shared array and
// returns the fully merged result. Must be called at a round barrier, after
// every PushBufferedAt/PushAtomic for the round has completed.
func (b *BufferedVector[T]) Finalize() []T {
	out := append([]T(nil), b.shared[:b.tail.Load()]...)
	for _, shard := range b.shards {
		out = append(out, shard...)
	}
	return out
}

// Reset clears all shards and the shared tail for the next round, reusing
// underlying storage where possible.
func (b *BufferedVector[T]) Reset() {
	b.tail.Store(0)
	for i := range b.shards {
		b.shards[i] = b.shards[i][:0]
	}
}

// SwapContainer exchanges this BufferedVector's backing shared storage with
// `other`, an O(1) pointer swap used to cheaply hand off a finalized round's
// results without copying.
func (b *BufferedVector[T]) SwapContainer(other []T) []T {
	old := b.shared
	b.shared = other
	b.tail.Store(int64(len(other)))
	return old
}
