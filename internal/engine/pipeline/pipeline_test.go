package pipeline

import (
	"testing"
	"time"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

// testTrace interleaves one elephant flow (1500-byte IP datagrams) with one
// mouse flow (10-byte datagrams). With a count window of 4 the elephant's
// windowed sum reaches 4*1518 bytes while the mouse never exceeds 112.
func testTrace() []*model.Packet {
	elephant := &model.Packet{
		SrcIP: 0x0A000001, DstIP: 0xC0A80001,
		SrcPort: 443, DstPort: 51000, Protocol: 6, IPLenTot: 1500,
	}
	mouse := &model.Packet{
		SrcIP: 0x0A000002, DstIP: 0xC0A80002,
		SrcPort: 53, DstPort: 51001, Protocol: 17, IPLenTot: 10,
	}
	return []*model.Packet{elephant, mouse, elephant, mouse}
}

func testConfig() config.PipelineConfig {
	return config.PipelineConfig{
		Replicas: config.ReplicasConfig{
			Source: 2, FlowID: 2, Accumulator: 2, Detector: 2, Sink: 2,
		},
		QueueCapacity: 64,
		BatchSize:     8,
		GenRate:       20000,
		RunTimeSec:    1,
		Threshold:     5000,
		Hash:          config.HashMultiplicative,
		Window:        config.WindowConfig{Type: config.WindowCount, Count: 4},
	}
}

func checkSummary(t *testing.T, s *Summary) {
	t.Helper()
	if s.Generated == 0 {
		t.Fatal("expected the sources to emit packets")
	}
	if s.Detected == 0 {
		t.Fatal("expected the elephant flow to be detected")
	}
	if s.Throughput <= 0 {
		t.Error("expected a positive source throughput")
	}
	if len(s.Hitters) != 1 {
		t.Fatalf("expected exactly one heavy hitter flow, got %d", len(s.Hitters))
	}
	for _, rec := range s.Hitters {
		if rec.SrcText != "10.0.0.1" || rec.DstText != "192.168.0.1" {
			t.Errorf("unexpected heavy hitter endpoints: %s -> %s", rec.SrcText, rec.DstText)
		}
		// 4 datagrams of 1500 bytes plus 18 bytes of link overhead each.
		if rec.BytePeak != 4*1518 {
			t.Errorf("expected byte peak 6072, got %d", rec.BytePeak)
		}
	}
	if len(s.Hosts) != 1 || s.Hosts[0] != "192.168.0.1" {
		t.Errorf("expected the single targeted host 192.168.0.1, got %v", s.Hosts)
	}
	if !s.LatencyOK || s.AvgLatencyMs < 0 {
		t.Errorf("expected latency samples, got ok=%v avg=%g", s.LatencyOK, s.AvgLatencyMs)
	}
}

func TestRunUnchained(t *testing.T) {
	pl, err := New(testConfig(), testTrace())
	if err != nil {
		t.Fatalf("failed to build the pipeline: %v", err)
	}
	s, err := pl.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	checkSummary(t, s)
}

func TestRunChained(t *testing.T) {
	cfg := testConfig()
	cfg.Chaining = true
	pl, err := New(cfg, testTrace())
	if err != nil {
		t.Fatalf("failed to build the pipeline: %v", err)
	}
	s, err := pl.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	checkSummary(t, s)
}

func TestStopEndsOpenEndedRun(t *testing.T) {
	cfg := testConfig()
	cfg.RunTimeSec = 0 // run until stopped
	pl, err := New(cfg, testTrace())
	if err != nil {
		t.Fatalf("failed to build the pipeline: %v", err)
	}

	done := make(chan *Summary, 1)
	go func() {
		s, err := pl.Run()
		if err != nil {
			t.Errorf("run failed: %v", err)
		}
		done <- s
	}()

	time.Sleep(100 * time.Millisecond)
	pl.Stop()

	select {
	case s := <-done:
		if s != nil && s.Generated == 0 {
			t.Error("expected packets before the stop request")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("pipeline did not shut down after Stop")
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	if _, err := New(testConfig(), nil); err == nil {
		t.Error("expected an error for an empty trace")
	}

	cfg := testConfig()
	cfg.Hash = "fnv"
	if _, err := New(cfg, testTrace()); err == nil {
		t.Error("expected an error for an unknown hash algorithm")
	}

	cfg = testConfig()
	cfg.Window.Type = "session"
	if _, err := New(cfg, testTrace()); err == nil {
		t.Error("expected an error for an unknown window type")
	}
}

func TestKeyedRoutingKeepsFlowsApart(t *testing.T) {
	// Two flows with distinct keys must surface as two hitters when both
	// exceed the threshold, regardless of which accumulator replica owns
	// which key.
	a := &model.Packet{SrcIP: 1, DstIP: 100, IPLenTot: 1400, Protocol: 6}
	b := &model.Packet{SrcIP: 2, DstIP: 200, IPLenTot: 1400, Protocol: 6}

	cfg := testConfig()
	cfg.Threshold = 2000
	pl, err := New(cfg, []*model.Packet{a, b})
	if err != nil {
		t.Fatalf("failed to build the pipeline: %v", err)
	}
	s, err := pl.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(s.Hitters) != 2 {
		t.Fatalf("expected two heavy hitter flows, got %d", len(s.Hitters))
	}
	if len(s.Hosts) != 2 {
		t.Errorf("expected two targeted hosts, got %v", s.Hosts)
	}
}
