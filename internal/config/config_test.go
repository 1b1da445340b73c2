package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
pipeline:
  dataset_path: "data/trace.csv"
  replicas:
    source: 1
    flow_id: 2
    accumulator: 2
    detector: 1
    sink: 1
  queue_capacity: 1024
  batch_size: 16
  threshold: 500000
  window:
    type: "time"
    length_ms: 1000
    slide_ms: 100
probe:
  nats_url: "nats://127.0.0.1:4222"
  subject: "hh.packets.raw"
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("failed to load a valid config: %v", err)
	}

	if cfg.Pipeline.Replicas.FlowID != 2 {
		t.Errorf("expected 2 flow id replicas, got %d", cfg.Pipeline.Replicas.FlowID)
	}
	if cfg.Pipeline.Window.Type != WindowTime || cfg.Pipeline.Window.LengthMs != 1000 {
		t.Errorf("unexpected window config: %+v", cfg.Pipeline.Window)
	}
	if cfg.Probe.Subject != "hh.packets.raw" {
		t.Errorf("unexpected probe subject: %q", cfg.Probe.Subject)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  window: {count: 100}
`))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Pipeline.Hash != HashMultiplicative {
		t.Errorf("expected the multiplicative hash default, got %q", cfg.Pipeline.Hash)
	}
	if cfg.Pipeline.Window.Type != WindowCount {
		t.Errorf("expected the count window default, got %q", cfg.Pipeline.Window.Type)
	}
	if cfg.Pipeline.OutputDir != "." {
		t.Errorf("expected the output dir default, got %q", cfg.Pipeline.OutputDir)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing file", ""},
		{"zero replicas", `
pipeline:
  replicas: {source: 0, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  window: {count: 100}
`},
		{"non power-of-two queue", `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 100
  window: {count: 100}
`},
		{"unknown hash", `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  hash: "fnv"
  window: {count: 100}
`},
		{"zero count window", `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  window: {type: "count", count: 0}
`},
		{"time window without slide", `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  window: {type: "time", length_ms: 1000}
`},
		{"unknown window type", `
pipeline:
  replicas: {source: 1, flow_id: 1, accumulator: 1, detector: 1, sink: 1}
  queue_capacity: 64
  window: {type: "session"}
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var path string
			if tc.body == "" {
				path = filepath.Join(t.TempDir(), "missing.yaml")
			} else {
				path = writeConfig(t, tc.body)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected a load error")
			}
		})
	}
}
