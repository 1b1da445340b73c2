package spscq

import (
	"runtime"
	"testing"
)

func TestNewQueueCapacity(t *testing.T) {
	for _, c := range []int{-1, 0, 1, 3, 6, 100} {
		if _, err := NewQueue[int](c); err == nil {
			t.Errorf("expected a configuration error for capacity %d", c)
		}
	}
	for _, c := range []int{2, 4, 64, 1024} {
		q, err := NewQueue[int](c)
		if err != nil {
			t.Fatalf("unexpected error for capacity %d: %v", c, err)
		}
		if q.Cap() != c {
			t.Errorf("expected capacity %d, got %d", c, q.Cap())
		}
	}
}

func TestQueueFullEmptySignals(t *testing.T) {
	q, err := NewQueue[int](4)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}

	if _, ok := q.TryPop(); ok {
		t.Fatal("pop from a fresh queue should report empty")
	}
	for i := 0; i < 4; i++ {
		if !q.TryPush(i) {
			t.Fatalf("push %d should succeed on a queue of capacity 4", i)
		}
	}
	if q.TryPush(4) {
		t.Fatal("5th push should report no space")
	}
	if v, ok := q.TryPop(); !ok || v != 0 {
		t.Fatalf("expected to pop 0, got %d (ok=%v)", v, ok)
	}
	if !q.TryPush(4) {
		t.Fatal("push after one pop should succeed")
	}
}

func TestQueueFIFO(t *testing.T) {
	q, err := NewQueue[int](8)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}

	next := 0
	for round := 0; round < 5; round++ {
		for i := 0; i < 6; i++ {
			if !q.TryPush(round*6 + i) {
				t.Fatalf("push failed with space available (round %d, i %d)", round, i)
			}
		}
		for i := 0; i < 6; i++ {
			v, ok := q.TryPop()
			if !ok {
				t.Fatalf("pop failed with elements available (round %d, i %d)", round, i)
			}
			if v != next {
				t.Fatalf("expected %d, got %d", next, v)
			}
			next++
		}
	}
}

func TestQueueBatchedVariants(t *testing.T) {
	q, err := NewQueue[int](16)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}

	if space := q.WriteSpace(8); space < 8 {
		t.Fatalf("expected at least 8 free slots, got %d", space)
	}
	for i := 0; i < 8; i++ {
		q.WriteLocal(i)
	}
	// Local writes are invisible until published.
	if _, ok := q.TryPop(); ok {
		t.Fatal("unpublished writes must not be visible to the consumer")
	}
	q.WritePublish()

	if space := q.ReadSpace(8); space != 8 {
		t.Fatalf("expected 8 readable slots after publish, got %d", space)
	}
	for i := 0; i < 8; i++ {
		if v := q.ReadLocal(); v != i {
			t.Fatalf("expected %d, got %d", i, v)
		}
	}
	// Consumed slots are released only after the read publish.
	if space := q.WriteSpace(16); space != 8 {
		t.Fatalf("expected 8 free slots before read publish, got %d", space)
	}
	q.ReadPublish()
	if space := q.WriteSpace(16); space != 16 {
		t.Fatalf("expected all slots free after read publish, got %d", space)
	}
}

func TestQueueConcurrentTransfer(t *testing.T) {
	const n = 100000
	q, err := NewQueue[int](128)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}

	go func() {
		for i := 0; i < n; i++ {
			for !q.TryPush(i) {
				runtime.Gosched()
			}
		}
		q.Close()
	}()

	next := 0
	for {
		v, ok := q.TryPop()
		if !ok {
			if q.Closed() {
				// One more poll to cover elements pushed right before Close.
				if v, ok = q.TryPop(); !ok {
					break
				}
			} else {
				runtime.Gosched()
				continue
			}
		}
		if v != next {
			t.Fatalf("expected %d, got %d", next, v)
		}
		next++
	}
	if next != n {
		t.Fatalf("expected %d elements, got %d", n, next)
	}
}

func TestNewLineQueueParameters(t *testing.T) {
	if _, err := NewLineQueue[int](8, 4); err == nil {
		t.Error("capacity below two cache lines should be rejected")
	}
	if _, err := NewLineQueue[int](24, 4); err == nil {
		t.Error("non-power-of-two capacity should be rejected")
	}
	if _, err := NewLineQueue[int](32, 0); err == nil {
		t.Error("zero stage size should be rejected")
	}
	if _, err := NewLineQueue[int](32, 17); err == nil {
		t.Error("stage size above half the capacity should be rejected")
	}
	if _, err := NewLineQueue[int](32, 8); err != nil {
		t.Errorf("unexpected error for a valid line queue: %v", err)
	}
}

func TestLineQueueDeferredRelease(t *testing.T) {
	q, err := NewLineQueue[int](16, 8)
	if err != nil {
		t.Fatalf("failed to create line queue: %v", err)
	}

	for i := 0; i < 16; i++ {
		if !q.TryPush(i) {
			t.Fatalf("push %d should succeed", i)
		}
	}
	if q.TryPush(16) {
		t.Fatal("push into a full line queue should fail")
	}

	// Slots are only released a full cache line (8 slots) at a time.
	for i := 0; i < 7; i++ {
		if v, ok := q.TryPop(); !ok || v != i {
			t.Fatalf("expected to pop %d, got %d (ok=%v)", i, v, ok)
		}
		if q.TryPush(100) {
			t.Fatalf("no capacity should be released after %d pops", i+1)
		}
	}
	if v, ok := q.TryPop(); !ok || v != 7 {
		t.Fatalf("expected to pop 7, got %d (ok=%v)", v, ok)
	}
	if !q.TryPush(16) {
		t.Fatal("a full consumed line should release capacity to the producer")
	}
}

func TestLineQueueStaging(t *testing.T) {
	q, err := NewLineQueue[int](32, 4)
	if err != nil {
		t.Fatalf("failed to create line queue: %v", err)
	}

	for i := 0; i < 4; i++ {
		if !q.StageLocal(i) {
			t.Fatalf("staging %d should succeed", i)
		}
	}
	if q.StageLocal(4) {
		t.Fatal("staging beyond the buffer size should fail")
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("staged elements must not be visible before the publish")
	}
	if n := q.StagePublish(); n != 4 {
		t.Fatalf("expected 4 published elements, got %d", n)
	}
	if q.StagedLen() != 0 {
		t.Fatalf("expected an empty staging buffer, got %d", q.StagedLen())
	}
	for i := 0; i < 4; i++ {
		if v, ok := q.TryPop(); !ok || v != i {
			t.Fatalf("expected to pop %d, got %d (ok=%v)", i, v, ok)
		}
	}
}

func TestLineQueueConcurrentTransfer(t *testing.T) {
	const n = 100000
	q, err := NewLineQueue[int](256, 16)
	if err != nil {
		t.Fatalf("failed to create line queue: %v", err)
	}

	go func() {
		for i := 0; i < n; i++ {
			for !q.TryPush(i) {
				runtime.Gosched()
			}
		}
		q.Close()
	}()

	next := 0
	for {
		v, ok := q.TryPop()
		if !ok {
			if q.Closed() {
				if v, ok = q.TryPop(); !ok {
					break
				}
			} else {
				runtime.Gosched()
				continue
			}
		}
		if v != next {
			t.Fatalf("expected %d, got %d", next, v)
		}
		next++
	}
	if next != n {
		t.Fatalf("expected %d elements, got %d", n, next)
	}
}

func BenchmarkQueueTransfer(b *testing.B) {
	q, err := NewQueue[int](1024)
	if err != nil {
		b.Fatalf("failed to create queue: %v", err)
	}

	go func() {
		for i := 0; i < b.N; i++ {
			for !q.TryPush(i) {
				runtime.Gosched()
			}
		}
	}()

	for i := 0; i < b.N; i++ {
		for {
			if _, ok := q.TryPop(); ok {
				break
			}
			runtime.Gosched()
		}
	}
}
