package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/engine/aggregate"
	"Go2HeavyHitter/internal/engine/detector"
	"Go2HeavyHitter/internal/engine/flowkey"
	"Go2HeavyHitter/internal/engine/sink"
	"Go2HeavyHitter/internal/engine/window"
	"Go2HeavyHitter/internal/model"
	"Go2HeavyHitter/internal/probe"
	"Go2HeavyHitter/internal/report"
	"Go2HeavyHitter/pkg/spscq"
)

// hh-engine runs the analysis over packets arriving from a remote probe via
// NATS instead of a local dataset replay. The NATS callback goroutine is the
// single producer of an SPSC ring; one worker goroutine consumes it and runs
// the fused stage chain.
func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the YAML configuration file.")
	flag.Parse()

	log.Println("Starting hh-engine...")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	keyer, err := flowkey.New(cfg.Pipeline.Hash)
	if err != nil {
		log.Fatalf("Failed to create flow keyer: %v", err)
	}
	acc, err := window.New(cfg.Pipeline.Window)
	if err != nil {
		log.Fatalf("Failed to create window accumulator: %v", err)
	}
	det := detector.New(cfg.Pipeline.Threshold)

	queue, err := spscq.NewQueue[*model.Packet](cfg.Pipeline.QueueCapacity)
	if err != nil {
		log.Fatalf("Failed to create ingress queue: %v", err)
	}

	results := aggregate.NewResultAggregator()
	metrics := aggregate.NewMetricsAggregator()
	results.Register(1)
	metrics.Register(1)

	rc := sink.NewResultCollector(0)
	mc := sink.NewMetricsCollector(0)
	received := uint64(0)
	emit := func(p *model.Packet) {
		if det.Detect(p) {
			rc.Update(p.FlowKey, p.SrcIPString(), p.DstIPString(), p.WinByteSum)
			mc.Sample(p.TsNs, time.Now().UnixNano())
			received++
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			p, ok := queue.TryPop()
			if !ok {
				if queue.Closed() {
					if p, ok = queue.TryPop(); !ok {
						break
					}
				} else {
					acc.Advance(time.Now().UnixNano(), emit)
					runtime.Gosched()
					continue
				}
			}
			keyer.Identify(p)
			acc.Process(p, emit)
			acc.Advance(time.Now().UnixNano(), emit)
		}
		acc.Flush(emit)
	}()

	sub, err := probe.NewSubscriber(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}

	dropped := uint64(0)
	err = sub.Start(func(p *model.Packet) {
		if p.TsNs == 0 {
			p.TsNs = time.Now().UnixNano()
		}
		if !queue.TryPush(p) {
			dropped++ // the analysis is behind; shed load at the edge
		}
	})
	if err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutdown signal received, draining...")
	sub.Close()
	queue.Close()
	<-done

	if dropped > 0 {
		log.Printf("Dropped %d packets at the ingress queue.", dropped)
	}
	log.Printf("Processed %d packets, %d detections above threshold.", acc.Processed(), det.Passed())

	if received == 0 {
		results.RecordEmpty()
		metrics.RecordEmpty()
	} else {
		results.Absorb(rc)
		metrics.Absorb(mc)
	}

	outDir := cfg.Pipeline.OutputDir
	if _, err := results.DumpPerReplica(outDir); err != nil {
		log.Printf("Failed to write per-replica reports: %v", err)
	}
	if _, err := results.DumpAggregated(outDir); err != nil {
		log.Printf("Failed to write the global report: %v", err)
	}
	if _, _, err := metrics.Dump(outDir); err != nil {
		log.Printf("Failed to write latency reports: %v", err)
	}

	if cfg.ClickHouse.Enabled {
		hitters, _, err := results.Finalize()
		if err != nil {
			log.Fatalf("Failed to finalize results: %v", err)
		}
		writer, err := report.NewClickHouseWriter(cfg.ClickHouse)
		if err != nil {
			log.Fatalf("Failed to create ClickHouse writer: %v", err)
		}
		defer writer.Close()

		runID := time.Now().Format("2006-01-02_15-04-05")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := writer.Write(ctx, runID, hitters); err != nil {
			log.Fatalf("Failed to persist results: %v", err)
		}
	}

	log.Println("Shutdown complete.")
}
