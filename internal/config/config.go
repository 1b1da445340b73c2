package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window semantics selectable in the accumulator stage.
const (
	WindowCount = "count"
	WindowTime  = "time"
)

// Flow key hash algorithms.
const (
	HashMultiplicative = "multiplicative"
	HashXor            = "xor"
)

// WindowConfig describes the sliding window used by the accumulator stage.
// For "count" windows only Count is relevant (slide is always 1); for "time"
// windows LengthMs and SlideMs are both durations in milliseconds.
type WindowConfig struct {
	Type     string `yaml:"type"`
	LengthMs int    `yaml:"length_ms"`
	SlideMs  int    `yaml:"slide_ms"`
	Count    int    `yaml:"count"`
}

// ReplicasConfig holds the parallelism degree of each pipeline stage.
type ReplicasConfig struct {
	Source      int `yaml:"source"`
	FlowID      int `yaml:"flow_id"`
	Accumulator int `yaml:"accumulator"`
	Detector    int `yaml:"detector"`
	Sink        int `yaml:"sink"`
}

// PipelineConfig holds the configuration for the heavy hitter pipeline.
type PipelineConfig struct {
	DatasetPath   string         `yaml:"dataset_path"`
	Replicas      ReplicasConfig `yaml:"replicas"`
	QueueCapacity int            `yaml:"queue_capacity"`
	BatchSize     int            `yaml:"batch_size"`
	GenRate       int            `yaml:"gen_rate"`     // tuples/s, 0 means full speed
	RunTimeSec    int            `yaml:"run_time_sec"` // 0 means until interrupted
	Chaining      bool           `yaml:"chaining"`
	Threshold     uint64         `yaml:"threshold"`
	Hash          string         `yaml:"hash"`
	Window        WindowConfig   `yaml:"window"`
	OutputDir     string         `yaml:"output_dir"`
}

// ProbeConfig holds the NATS transport settings shared by hh-probe and hh-engine.
type ProbeConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// ClickHouseConfig holds the connection settings for the report writer and querier.
type ClickHouseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// APIConfig holds the listen addresses of the query service.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	GRPCAddr   string `yaml:"grpc_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Probe      ProbeConfig      `yaml:"probe"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
	API        APIConfig        `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the pipeline parameters. All violations here are fatal
// configuration errors: the run must abort before any stage executes.
func (c *Config) Validate() error {
	p := &c.Pipeline

	if p.Hash == "" {
		p.Hash = HashMultiplicative
	}
	if p.Hash != HashMultiplicative && p.Hash != HashXor {
		return fmt.Errorf("unknown hash algorithm %q", p.Hash)
	}

	for name, n := range map[string]int{
		"source":      p.Replicas.Source,
		"flow_id":     p.Replicas.FlowID,
		"accumulator": p.Replicas.Accumulator,
		"detector":    p.Replicas.Detector,
		"sink":        p.Replicas.Sink,
	} {
		if n < 1 {
			return fmt.Errorf("stage %s needs at least one replica, got %d", name, n)
		}
	}

	if p.QueueCapacity < 2 || p.QueueCapacity&(p.QueueCapacity-1) != 0 {
		return fmt.Errorf("queue capacity must be a power of two >= 2, got %d", p.QueueCapacity)
	}
	if p.BatchSize < 0 {
		return fmt.Errorf("batch size must be non-negative, got %d", p.BatchSize)
	}
	if p.GenRate < 0 {
		return fmt.Errorf("generation rate must be non-negative, got %d", p.GenRate)
	}

	switch p.Window.Type {
	case WindowCount:
		if p.Window.Count < 1 {
			return fmt.Errorf("count window needs a length of at least one element, got %d", p.Window.Count)
		}
	case WindowTime:
		if p.Window.LengthMs <= 0 {
			return fmt.Errorf("time window needs a positive length, got %d ms", p.Window.LengthMs)
		}
		if p.Window.SlideMs <= 0 {
			return fmt.Errorf("time window needs a positive slide, got %d ms", p.Window.SlideMs)
		}
	case "":
		p.Window.Type = WindowCount
		if p.Window.Count < 1 {
			return fmt.Errorf("count window needs a length of at least one element, got %d", p.Window.Count)
		}
	default:
		return fmt.Errorf("unknown window type %q", p.Window.Type)
	}

	if p.OutputDir == "" {
		p.OutputDir = "."
	}

	return nil
}
