package window

import (
	"testing"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

func collect(out *[]*model.Packet) Emit {
	return func(p *model.Packet) { *out = append(*out, p) }
}

func TestNewRejectsBadGeometry(t *testing.T) {
	cases := []config.WindowConfig{
		{Type: config.WindowCount, Count: 0},
		{Type: config.WindowTime, LengthMs: 0, SlideMs: 100},
		{Type: config.WindowTime, LengthMs: 500, SlideMs: 0},
		{Type: "session"},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); err == nil {
			t.Errorf("expected a configuration error for %+v", cfg)
		}
	}
}

func TestCountWindowSums(t *testing.T) {
	acc, err := New(config.WindowConfig{Type: config.WindowCount, Count: 3})
	if err != nil {
		t.Fatalf("failed to create accumulator: %v", err)
	}

	lens := []uint32{100, 200, 5000, 40, 40}
	// Expected sums for window size 3: b_{max(1,k-2)} .. b_k.
	want := []uint64{100, 300, 5300, 5240, 5080}

	var got []*model.Packet
	for i, l := range lens {
		p := &model.Packet{FlowKey: 7, TotalLen: l, TsNs: int64(i + 1)}
		acc.Process(p, collect(&got))
	}

	if len(got) != len(lens) {
		t.Fatalf("count windows must emit once per packet, got %d emissions", len(got))
	}
	for i, p := range got {
		if p.WinByteSum != want[i] {
			t.Errorf("packet %d: expected sum %d, got %d", i, want[i], p.WinByteSum)
		}
	}
	if acc.Processed() != uint64(len(lens)) {
		t.Errorf("expected %d processed packets, got %d", len(lens), acc.Processed())
	}
}

func TestCountWindowKeysIsolated(t *testing.T) {
	acc, _ := New(config.WindowConfig{Type: config.WindowCount, Count: 2})

	var got []*model.Packet
	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 100}, collect(&got))
	acc.Process(&model.Packet{FlowKey: 2, TotalLen: 999}, collect(&got))
	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 50}, collect(&got))

	if got[2].WinByteSum != 150 {
		t.Errorf("flows must not share window state: expected 150, got %d", got[2].WinByteSum)
	}
}

func TestTimeWindowBoundary(t *testing.T) {
	// Window length 100ms, slide 100ms.
	acc, err := New(config.WindowConfig{Type: config.WindowTime, LengthMs: 100, SlideMs: 100})
	if err != nil {
		t.Fatalf("failed to create accumulator: %v", err)
	}

	const ms = int64(1e6)
	var got []*model.Packet
	emit := collect(&got)

	// First packet at t=100ms fixes the first tick at t=200ms; the window
	// then covers the closed interval [100ms, 200ms].
	acc.Process(&model.Packet{FlowKey: 3, TotalLen: 10, TsNs: 100 * ms, DstIP: 1}, emit)
	acc.Process(&model.Packet{FlowKey: 3, TotalLen: 20, TsNs: 150 * ms, DstIP: 2}, emit)
	acc.Process(&model.Packet{FlowKey: 3, TotalLen: 40, TsNs: 200 * ms, DstIP: 3}, emit)
	acc.Process(&model.Packet{FlowKey: 3, TotalLen: 80, TsNs: 201 * ms, DstIP: 4}, emit)

	acc.Advance(200*ms, emit)
	if len(got) != 1 {
		t.Fatalf("expected one snapshot at the first tick, got %d", len(got))
	}
	// The packet at exactly T-L=100ms is included; the one at 201ms is not.
	if got[0].WinByteSum != 70 {
		t.Errorf("expected sum 70 over [100ms, 200ms], got %d", got[0].WinByteSum)
	}
	// Representative fields come from the most recently arrived packet in
	// the window.
	if got[0].DstIP != 3 || got[0].TsNs != 200*ms {
		t.Errorf("snapshot must carry the last in-window packet, got dst %d ts %d", got[0].DstIP, got[0].TsNs)
	}

	// Next tick at 300ms covers [200ms, 300ms]: the boundary packet at
	// exactly 200ms is included again, the one at 100ms has been evicted.
	got = got[:0]
	acc.Advance(300*ms, emit)
	if len(got) != 1 {
		t.Fatalf("expected one snapshot at the second tick, got %d", len(got))
	}
	if got[0].WinByteSum != 120 {
		t.Errorf("expected sum 120 over [200ms, 300ms], got %d", got[0].WinByteSum)
	}
}

func TestTimeWindowEmptyProducesNothing(t *testing.T) {
	acc, _ := New(config.WindowConfig{Type: config.WindowTime, LengthMs: 10, SlideMs: 10})

	const ms = int64(1e6)
	var got []*model.Packet
	emit := collect(&got)

	acc.Process(&model.Packet{FlowKey: 9, TotalLen: 10, TsNs: 5 * ms}, emit)
	// Far enough that several ticks see an empty window for the flow.
	acc.Advance(100*ms, emit)

	if len(got) != 1 {
		t.Fatalf("an empty window must not emit a zero-sum snapshot, got %d emissions", len(got))
	}
}

func TestTimeWindowMultipleTicksPerAdvance(t *testing.T) {
	acc, _ := New(config.WindowConfig{Type: config.WindowTime, LengthMs: 100, SlideMs: 50})

	const ms = int64(1e6)
	var got []*model.Packet
	emit := collect(&got)

	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 10, TsNs: 10 * ms}, emit)
	// First tick at 60ms, then 110ms: the single packet is inside both
	// windows ([−40,60] and [10,110]).
	acc.Advance(120*ms, emit)

	if len(got) != 2 {
		t.Fatalf("expected a snapshot per due tick, got %d", len(got))
	}
}

func TestTimeWindowOutOfOrderTolerated(t *testing.T) {
	acc, _ := New(config.WindowConfig{Type: config.WindowTime, LengthMs: 100, SlideMs: 100})

	const ms = int64(1e6)
	var got []*model.Packet
	emit := collect(&got)

	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 10, TsNs: 150 * ms}, emit)
	// Late packet, still inside [150ms, 250ms].
	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 20, TsNs: 160 * ms}, emit)
	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 40, TsNs: 155 * ms}, emit)

	acc.Advance(250*ms, emit)
	if len(got) != 1 || got[0].WinByteSum != 70 {
		t.Fatalf("out-of-order timestamps must be clamped by comparison, got %+v", got)
	}
}

func TestTimeWindowFlush(t *testing.T) {
	acc, _ := New(config.WindowConfig{Type: config.WindowTime, LengthMs: 100, SlideMs: 100})

	const ms = int64(1e6)
	var got []*model.Packet
	emit := collect(&got)

	acc.Process(&model.Packet{FlowKey: 1, TotalLen: 10, TsNs: 50 * ms}, emit)
	acc.Flush(emit)

	if len(got) != 1 || got[0].WinByteSum != 10 {
		t.Fatalf("flush must evaluate the pending window, got %+v", got)
	}
}
