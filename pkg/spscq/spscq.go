// Package spscq provides bounded, wait-free single-producer/single-consumer
// ring buffers used as the transport between pipeline stages running on
// separate goroutines.
//
// Two flavors are provided. Queue is a Lamport-style ring with shadow
// cursors: each side keeps a private copy of the opposite cursor and only
// reloads it when the cached view runs out, so the common case touches no
// shared cache line. LineQueue additionally defers slot reuse until a full
// cache line of slots has been consumed, trading a little capacity slack for
// fewer cross-core stores on the consumer side.
//
// Cursor publication uses sync/atomic Store/Load, which gives the required
// release/acquire pairing: a slot write is globally visible before the
// cursor advance that covers it, and a slot is read only after the covering
// cursor value has been observed.
package spscq

import (
	"fmt"
	"sync/atomic"
)

// CacheLineSize is the assumed size of one CPU cache line in bytes.
const CacheLineSize = 64

// lineSlots is the number of pointer-sized slots per cache line.
const lineSlots = CacheLineSize / 8

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Queue is a bounded wait-free SPSC ring buffer. Cursors grow monotonically;
// the slot index is the cursor masked by capacity-1, so capacity must be a
// power of two. Exactly one goroutine may push and exactly one may pop.
type Queue[T any] struct {
	buf  []T
	mask uint64

	_ [CacheLineSize]byte
	// Producer private.
	writePriv  uint64
	readShadow uint64
	_          [CacheLineSize - 16]byte
	// Producer writes, consumer reads.
	write atomic.Uint64
	_     [CacheLineSize - 8]byte
	// Consumer private.
	readPriv    uint64
	writeShadow uint64
	_           [CacheLineSize - 16]byte
	// Consumer writes, producer reads.
	read atomic.Uint64
	_    [CacheLineSize - 8]byte

	closed atomic.Bool
}

// NewQueue creates a queue with the given capacity. The capacity must be a
// power of two and at least 2; anything else is a configuration error.
func NewQueue[T any](capacity int) (*Queue[T], error) {
	if capacity < 2 || !isPowerOfTwo(capacity) {
		return nil, fmt.Errorf("queue capacity must be a power of two >= 2, got %d", capacity)
	}
	return &Queue[T]{
		buf:  make([]T, capacity),
		mask: uint64(capacity - 1),
	}, nil
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// TryPush appends v and reports whether there was space. It never blocks;
// the caller owns the backoff/retry policy.
func (q *Queue[T]) TryPush(v T) bool {
	w := q.writePriv
	if w-q.readShadow >= uint64(len(q.buf)) {
		q.readShadow = q.read.Load()
		if w-q.readShadow >= uint64(len(q.buf)) {
			return false // no space
		}
	}
	q.buf[w&q.mask] = v
	q.write.Store(w + 1)
	q.writePriv = w + 1
	return true
}

// TryPop removes the oldest element and reports whether one was present.
func (q *Queue[T]) TryPop() (T, bool) {
	var zero T
	r := q.readPriv
	if q.writeShadow == r {
		q.writeShadow = q.write.Load()
		if q.writeShadow == r {
			return zero, false // empty
		}
	}
	v := q.buf[r&q.mask]
	q.buf[r&q.mask] = zero
	q.read.Store(r + 1)
	q.readPriv = r + 1
	return v, true
}

// WriteSpace returns the number of free slots visible to the producer,
// reloading the consumer cursor only if the cached view is below needed.
func (q *Queue[T]) WriteSpace(needed int) int {
	space := uint64(len(q.buf)) - (q.writePriv - q.readShadow)
	if space >= uint64(needed) {
		return int(space)
	}
	q.readShadow = q.read.Load()
	return int(uint64(len(q.buf)) - (q.writePriv - q.readShadow))
}

// WriteLocal stores v without publishing it. No boundary checks: the caller
// must have reserved the slot via WriteSpace.
func (q *Queue[T]) WriteLocal(v T) {
	q.buf[q.writePriv&q.mask] = v
	q.writePriv++
}

// WritePublish makes all local writes visible with a single cursor update.
func (q *Queue[T]) WritePublish() {
	q.write.Store(q.writePriv)
}

// ReadSpace returns the number of readable slots visible to the consumer,
// reloading the producer cursor only if the cached view is below needed.
func (q *Queue[T]) ReadSpace(needed int) int {
	space := q.writeShadow - q.readPriv
	if space >= uint64(needed) {
		return int(space)
	}
	q.writeShadow = q.write.Load()
	return int(q.writeShadow - q.readPriv)
}

// ReadLocal consumes one slot without releasing it. No boundary checks: the
// caller must have checked availability via ReadSpace.
func (q *Queue[T]) ReadLocal() T {
	v := q.buf[q.readPriv&q.mask]
	q.readPriv++
	return v
}

// ReadPublish zeroes every slot consumed via ReadLocal and then releases
// them to the producer with a single cursor update. Slots must be cleared
// before the release, otherwise the clear would race the producer reusing
// them.
func (q *Queue[T]) ReadPublish() {
	var zero T
	for i := q.read.Load(); i != q.readPriv; i++ {
		q.buf[i&q.mask] = zero
	}
	q.read.Store(q.readPriv)
}

// Close marks the producer side as finished. It carries no ordering of its
// own: elements pushed before Close remain poppable, and a consumer that
// observes Closed must poll TryPop once more before treating the queue as
// drained.
func (q *Queue[T]) Close() {
	q.closed.Store(true)
}

// Closed reports whether the producer has finished.
func (q *Queue[T]) Closed() bool {
	return q.closed.Load()
}

// LineQueue is an SPSC ring buffer where the consumer defers both the
// clearing of consumed slots and the release of their capacity until a full
// cache line of slots has been drained, amortizing the cross-core store
// traffic. The producer symmetrically stages writes in a private buffer and
// publishes them with one cursor update.
type LineQueue[T any] struct {
	buf  []T
	mask uint64

	_ [CacheLineSize]byte
	// Producer private.
	prodWrite uint64
	prodCheck uint64 // cached clear cursor plus capacity
	stage     []T
	_         [CacheLineSize - 40]byte
	// Producer writes, consumer reads.
	write atomic.Uint64
	_     [CacheLineSize - 8]byte
	// Consumer private.
	consRead    uint64
	consClear   uint64
	writeShadow uint64
	_           [CacheLineSize - 24]byte
	// Consumer writes, producer reads. Slots below this cursor are zeroed
	// and reusable.
	clear atomic.Uint64
	_     [CacheLineSize - 8]byte

	closed atomic.Bool
}

// NewLineQueue creates a line queue with the given capacity and staging
// buffer size. The capacity must be a power of two and hold at least two
// cache lines of slots, otherwise the deferred clearing could starve the
// producer.
func NewLineQueue[T any](capacity, stageSize int) (*LineQueue[T], error) {
	if !isPowerOfTwo(capacity) || capacity < 2*lineSlots {
		return nil, fmt.Errorf("line queue capacity must be a power of two >= %d, got %d", 2*lineSlots, capacity)
	}
	if stageSize < 1 || stageSize > capacity/2 {
		return nil, fmt.Errorf("stage size must be in [1, %d], got %d", capacity/2, stageSize)
	}
	return &LineQueue[T]{
		buf:   make([]T, capacity),
		mask:  uint64(capacity - 1),
		stage: make([]T, 0, stageSize),
	}, nil
}

// Cap returns the ring capacity.
func (q *LineQueue[T]) Cap() int { return len(q.buf) }

// TryPush appends v and reports whether there was space.
func (q *LineQueue[T]) TryPush(v T) bool {
	if q.prodWrite >= q.prodCheck {
		q.prodCheck = q.clear.Load() + uint64(len(q.buf))
		if q.prodWrite >= q.prodCheck {
			return false // no space
		}
	}
	q.buf[q.prodWrite&q.mask] = v
	q.prodWrite++
	q.write.Store(q.prodWrite)
	return true
}

// StageLocal appends v to the producer's private staging buffer. It reports
// false when the buffer is full and must be published first.
func (q *LineQueue[T]) StageLocal(v T) bool {
	if len(q.stage) == cap(q.stage) {
		return false
	}
	q.stage = append(q.stage, v)
	return true
}

// StagePublish copies as many staged elements as fit into the ring and
// publishes them with a single cursor update. It returns the number of
// elements actually moved; the rest stay staged for the next attempt.
func (q *LineQueue[T]) StagePublish() int {
	if len(q.stage) == 0 {
		return 0
	}
	if q.prodWrite+uint64(len(q.stage)) > q.prodCheck {
		q.prodCheck = q.clear.Load() + uint64(len(q.buf))
	}
	n := 0
	for n < len(q.stage) && q.prodWrite < q.prodCheck {
		q.buf[q.prodWrite&q.mask] = q.stage[n]
		q.prodWrite++
		n++
	}
	if n == 0 {
		return 0
	}
	q.write.Store(q.prodWrite)
	q.stage = append(q.stage[:0], q.stage[n:]...)
	return n
}

// StagedLen returns the number of elements waiting in the staging buffer.
func (q *LineQueue[T]) StagedLen() int { return len(q.stage) }

// TryPop removes the oldest element and reports whether one was present.
// Consumed slots are zeroed and released one full cache line at a time.
func (q *LineQueue[T]) TryPop() (T, bool) {
	var zero T
	if q.consRead == q.writeShadow {
		q.writeShadow = q.write.Load()
		if q.consRead == q.writeShadow {
			return zero, false // empty
		}
	}
	v := q.buf[q.consRead&q.mask]
	q.consRead++

	if q.consRead-q.consClear >= lineSlots {
		target := q.consRead &^ uint64(lineSlots-1)
		for i := q.consClear; i != target; i++ {
			q.buf[i&q.mask] = zero
		}
		q.consClear = target
		q.clear.Store(target)
	}
	return v, true
}

// Close marks the producer side as finished. Staged but unpublished
// elements are not flushed; call StagePublish until StagedLen is zero first.
func (q *LineQueue[T]) Close() {
	q.closed.Store(true)
}

// Closed reports whether the producer has finished.
func (q *LineQueue[T]) Closed() bool {
	return q.closed.Load()
}
