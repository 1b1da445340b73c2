// Package window maintains per-flow sliding-window byte accumulation and
// emits one snapshot per evaluation trigger. Count-based windows slide by
// one element on every packet; time-based windows slide on time ticks
// independent of arrival count. State is partitioned by flow key and owned
// by a single accumulator replica, so no locking happens on the hot path;
// per-key FIFO delivery is guaranteed by the keyed routing upstream.
package window

import (
	"fmt"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

// Emit receives a snapshot packet carrying the windowed byte sum. The
// snapshot's timestamp and addresses are those of the most recently arrived
// packet in the window.
type Emit func(*model.Packet)

// Accumulator is the per-replica windowing state machine.
type Accumulator interface {
	// Process folds one packet into its flow's window. Count-based windows
	// emit a snapshot here, once per packet.
	Process(p *model.Packet, emit Emit)
	// Advance evaluates all time-based windows whose slide tick is due at or
	// before nowNs. It is a no-op for count-based windows.
	Advance(nowNs int64, emit Emit)
	// Flush performs one final evaluation at end of stream.
	Flush(emit Emit)
	// Processed returns the number of packets folded so far.
	Processed() uint64
}

// New creates an accumulator for the configured window semantics.
func New(cfg config.WindowConfig) (Accumulator, error) {
	switch cfg.Type {
	case config.WindowCount:
		if cfg.Count < 1 {
			return nil, fmt.Errorf("count window needs a length of at least one element, got %d", cfg.Count)
		}
		return newCountWindow(cfg.Count), nil
	case config.WindowTime:
		if cfg.LengthMs <= 0 || cfg.SlideMs <= 0 {
			return nil, fmt.Errorf("time window needs positive length and slide, got %d/%d ms",
				cfg.LengthMs, cfg.SlideMs)
		}
		return newTimeWindow(int64(cfg.LengthMs)*1e6, int64(cfg.SlideMs)*1e6), nil
	default:
		return nil, fmt.Errorf("unknown window type %q", cfg.Type)
	}
}

// countState is the ring of byte lengths currently inside one flow's window.
type countState struct {
	lens  []uint32
	head  int
	count int
	sum   uint64
}

// countWindow implements count-based windows of fixed size with slide 1.
type countWindow struct {
	size      int
	flows     map[uint64]*countState
	processed uint64
}

func newCountWindow(size int) *countWindow {
	return &countWindow{
		size:  size,
		flows: make(map[uint64]*countState),
	}
}

// Process updates the running sum incrementally: evict the oldest entry's
// contribution when the window is at capacity, then add the new one. One
// snapshot is emitted per incoming packet.
func (w *countWindow) Process(p *model.Packet, emit Emit) {
	st, ok := w.flows[p.FlowKey]
	if !ok {
		st = &countState{lens: make([]uint32, w.size)}
		w.flows[p.FlowKey] = st
	}

	if st.count == w.size {
		st.sum -= uint64(st.lens[st.head])
		st.head = (st.head + 1) % w.size
		st.count--
	}
	st.lens[(st.head+st.count)%w.size] = p.TotalLen
	st.count++
	st.sum += uint64(p.TotalLen)

	p.WinByteSum = st.sum
	w.processed++
	emit(p)
}

func (w *countWindow) Advance(int64, Emit) {}

func (w *countWindow) Flush(Emit) {}

func (w *countWindow) Processed() uint64 { return w.processed }

// timeEntry is one packet's contribution to a time-based window.
type timeEntry struct {
	tsNs  int64
	bytes uint32
	src   uint32
	dst   uint32
}

// timeState holds the entries of one flow that may still fall into a window.
type timeState struct {
	entries []timeEntry
}

// timeWindow implements time-based windows of length L sliding by S. A
// window evaluated at tick T covers the closed interval [T-L, T]: a packet
// stamped exactly T-L is still included.
type timeWindow struct {
	length    int64 // ns
	slide     int64 // ns
	flows     map[uint64]*timeState
	nextTick  int64
	lastTs    int64
	processed uint64
}

func newTimeWindow(length, slide int64) *timeWindow {
	return &timeWindow{
		length: length,
		slide:  slide,
		flows:  make(map[uint64]*timeState),
	}
}

// Process buffers the packet's contribution. Out-of-order timestamps are
// tolerated: the entry is kept and clamped into or out of a window purely by
// timestamp comparison at evaluation time.
func (w *timeWindow) Process(p *model.Packet, emit Emit) {
	st, ok := w.flows[p.FlowKey]
	if !ok {
		st = &timeState{}
		w.flows[p.FlowKey] = st
	}
	st.entries = append(st.entries, timeEntry{
		tsNs:  p.TsNs,
		bytes: p.TotalLen,
		src:   p.SrcIP,
		dst:   p.DstIP,
	})
	if p.TsNs > w.lastTs {
		w.lastTs = p.TsNs
	}
	if w.nextTick == 0 {
		w.nextTick = p.TsNs + w.slide
	}
	w.processed++
}

// Advance runs every slide tick due at or before nowNs.
func (w *timeWindow) Advance(nowNs int64, emit Emit) {
	if w.nextTick == 0 {
		return
	}
	for w.nextTick <= nowNs {
		w.evaluate(w.nextTick, emit)
		w.nextTick += w.slide
	}
}

// Flush evaluates one last window at the latest timestamp seen, so packets
// that arrived after the final slide tick are still reported.
func (w *timeWindow) Flush(emit Emit) {
	if w.lastTs == 0 {
		return
	}
	w.evaluate(w.lastTs, emit)
}

func (w *timeWindow) Processed() uint64 { return w.processed }

// evaluate recomputes each flow's sum over [tick-length, tick] and emits one
// snapshot per flow with at least one packet inside the window. A flow with
// an empty window produces no emission: a zero sum would be
// indistinguishable from a legitimate small flow.
func (w *timeWindow) evaluate(tick int64, emit Emit) {
	lower := tick - w.length

	for key, st := range w.flows {
		// Entries older than the window lower bound can never qualify again.
		kept := st.entries[:0]
		for _, e := range st.entries {
			if e.tsNs >= lower {
				kept = append(kept, e)
			}
		}
		st.entries = kept

		var sum uint64
		var last timeEntry
		n := 0
		for _, e := range st.entries {
			if e.tsNs <= tick { // entries beyond the tick belong to later windows
				sum += uint64(e.bytes)
				last = e
				n++
			}
		}
		if n == 0 {
			continue
		}

		emit(&model.Packet{
			TsNs:       last.tsNs,
			SrcIP:      last.src,
			DstIP:      last.dst,
			FlowKey:    key,
			TotalLen:   last.bytes,
			WinByteSum: sum,
		})
	}
}
