package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/engine/pipeline"
	"Go2HeavyHitter/internal/report"
	"Go2HeavyHitter/pkg/dataset"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the YAML configuration file.")
	datasetPath := flag.String("dataset", "", "Dataset file (.csv or .pcap), overrides the configured path.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *datasetPath != "" {
		cfg.Pipeline.DatasetPath = *datasetPath
	}
	if cfg.Pipeline.DatasetPath == "" {
		log.Fatal("No dataset configured: set pipeline.dataset_path or pass -dataset.")
	}

	trace, err := dataset.Load(cfg.Pipeline.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	pl, err := pipeline.New(cfg.Pipeline, trace)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	p := cfg.Pipeline
	log.Println("Executing HeavyHitter with parameters:")
	log.Printf("  * dataset: %s (%d packets)", p.DatasetPath, len(trace))
	log.Printf("  * replicas: source %d, flow id %d, accumulator %d, detector %d, sink %d",
		p.Replicas.Source, p.Replicas.FlowID, p.Replicas.Accumulator, p.Replicas.Detector, p.Replicas.Sink)
	log.Printf("  * window: %s (count=%d length=%dms slide=%dms), threshold %d bytes",
		p.Window.Type, p.Window.Count, p.Window.LengthMs, p.Window.SlideMs, p.Threshold)
	log.Printf("  * rate: %d tuples/s, run time: %ds, chaining: %v", p.GenRate, p.RunTimeSec, p.Chaining)

	// An interrupt asks the sources to finish early; the shutdown then
	// cascades through the stage graph.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, stopping sources...")
		pl.Stop()
	}()

	summary, err := pl.Run()
	if err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}

	log.Printf("[MEASURE] generated %d packets in %s", summary.Generated, summary.Elapsed.Round(time.Millisecond))
	log.Printf("[MEASURE] throughput: %.0f packets/s", summary.Throughput)
	log.Printf("[MEASURE] detections above threshold: %d", summary.Detected)
	if summary.LatencyOK {
		log.Printf("[MEASURE] average end-to-end latency: %.3f ms", summary.AvgLatencyMs)
	}
	log.Printf("[MEASURE] distinct heavy hitter flows: %d, targeted hosts: %d",
		len(summary.Hitters), len(summary.Hosts))

	if _, err := pl.Results().DumpPerReplica(p.OutputDir); err != nil {
		log.Printf("Failed to write per-replica reports: %v", err)
	}
	if _, err := pl.Results().DumpAggregated(p.OutputDir); err != nil {
		log.Printf("Failed to write the global report: %v", err)
	}
	if _, _, err := pl.Metrics().Dump(p.OutputDir); err != nil {
		log.Printf("Failed to write latency reports: %v", err)
	}

	if cfg.ClickHouse.Enabled {
		writer, err := report.NewClickHouseWriter(cfg.ClickHouse)
		if err != nil {
			log.Fatalf("Failed to create ClickHouse writer: %v", err)
		}
		defer writer.Close()

		runID := time.Now().Format("2006-01-02_15-04-05")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := writer.Write(ctx, runID, summary.Hitters); err != nil {
			log.Fatalf("Failed to persist results: %v", err)
		}
	}
}
