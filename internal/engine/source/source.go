// Package source replays an in-memory packet trace into the pipeline. Each
// replica owns a full copy of the trace reference and cycles over it until the
// configured run time elapses or the pipeline asks it to stop.
package source

import (
	"sync/atomic"
	"time"

	"Go2HeavyHitter/internal/model"
)

// Source is one replica of the replay stage.
type Source struct {
	replica   int
	packets   []*model.Packet
	interval  time.Duration // inter-packet gap, zero means unpaced
	duration  time.Duration
	generated uint64
}

// New creates a replay source over a loaded trace. rate is the target
// emission rate in packets per second for this replica; zero replays at full
// speed. duration bounds the replay wall-clock time.
func New(replica int, packets []*model.Packet, rate int, duration time.Duration) *Source {
	var interval time.Duration
	if rate > 0 {
		interval = time.Second / time.Duration(rate)
	}
	return &Source{
		replica:  replica,
		packets:  packets,
		interval: interval,
		duration: duration,
	}
}

// Run replays the trace cyclically until the duration elapses or stop is set.
// Every emitted packet is a fresh copy stamped with the emission time, so
// downstream stages may mutate it freely. Returns the number of packets
// emitted.
func (s *Source) Run(stop *atomic.Bool, emit func(*model.Packet)) uint64 {
	start := time.Now()
	deadline := start.Add(s.duration)
	next := start
	i := 0
	for !stop.Load() {
		now := time.Now()
		if !now.Before(deadline) {
			break
		}
		if s.interval > 0 {
			// Active delay keeps the emission jitter below what a timer
			// wakeup would add at high rates.
			for time.Now().Before(next) {
			}
			next = next.Add(s.interval)
		}

		p := *s.packets[i]
		p.TsNs = time.Now().UnixNano()
		emit(&p)
		s.generated++

		i++
		if i == len(s.packets) {
			i = 0
		}
	}
	return s.generated
}

// Generated returns the number of packets emitted so far.
func (s *Source) Generated() uint64 {
	return s.generated
}

// Replica returns the replica index of this source.
func (s *Source) Replica() int {
	return s.replica
}
