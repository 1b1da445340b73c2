// Package pipeline assembles the five stage groups of the heavy hitter
// analysis into a running graph of goroutines connected by SPSC ring buffers.
// Every replica of a stage owns its state exclusively; the only cross-replica
// touch points are the queue cursors and the end-of-run aggregators.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/engine/aggregate"
	"Go2HeavyHitter/internal/engine/detector"
	"Go2HeavyHitter/internal/engine/flowkey"
	"Go2HeavyHitter/internal/engine/sink"
	"Go2HeavyHitter/internal/engine/source"
	"Go2HeavyHitter/internal/engine/window"
	"Go2HeavyHitter/internal/model"
	"Go2HeavyHitter/pkg/spscq"
)

// Summary is the end-of-run outcome of one pipeline execution.
type Summary struct {
	Generated    uint64
	Detected     uint64
	Elapsed      time.Duration
	Throughput   float64 // packets/s at the sources
	AvgLatencyMs float64
	LatencyOK    bool
	Hitters      map[uint64]sink.Record
	Hosts        []string
}

// Pipeline is one configured, runnable instance of the analysis graph.
type Pipeline struct {
	cfg   config.PipelineConfig
	trace []*model.Packet

	results *aggregate.ResultAggregator
	metrics *aggregate.MetricsAggregator

	stop      atomic.Bool
	generated atomic.Uint64
	detected  atomic.Uint64
}

// New creates a pipeline over a loaded trace. The configuration must already
// be validated.
func New(cfg config.PipelineConfig, trace []*model.Packet) (*Pipeline, error) {
	if len(trace) == 0 {
		return nil, fmt.Errorf("cannot run over an empty trace")
	}
	if _, err := flowkey.New(cfg.Hash); err != nil {
		return nil, err
	}
	if _, err := window.New(cfg.Window); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, trace: trace}, nil
}

// Stop asks the sources to finish early; the shutdown then cascades stage by
// stage through the queue close protocol. Safe from any goroutine.
func (pl *Pipeline) Stop() {
	pl.stop.Store(true)
}

// Results exposes the heavy hitter aggregator of the last run.
func (pl *Pipeline) Results() *aggregate.ResultAggregator { return pl.results }

// Metrics exposes the latency aggregator of the last run.
func (pl *Pipeline) Metrics() *aggregate.MetricsAggregator { return pl.metrics }

// Run executes the graph to completion and returns the merged outcome. With
// chaining enabled the flow id stage is fused into the sources and the
// detector and sink stages are fused into the accumulators, leaving a single
// queue matrix in the graph.
func (pl *Pipeline) Run() (*Summary, error) {
	pl.results = aggregate.NewResultAggregator()
	pl.metrics = aggregate.NewMetricsAggregator()
	pl.stop.Store(false)
	pl.generated.Store(0)
	pl.detected.Store(0)

	if pl.cfg.Chaining {
		return pl.runChained()
	}
	return pl.runUnchained()
}

func (pl *Pipeline) duration() time.Duration {
	if pl.cfg.RunTimeSec > 0 {
		return time.Duration(pl.cfg.RunTimeSec) * time.Second
	}
	return 365 * 24 * time.Hour // effectively until Stop
}

func (pl *Pipeline) runUnchained() (*Summary, error) {
	r := pl.cfg.Replicas
	pl.results.Register(r.Sink)
	pl.metrics.Register(r.Sink)

	// The source edge gets the line-clearing flavor when the capacity
	// permits; the remaining edges use the plain ring.
	srcToKey, err := pl.matrix(r.Source, r.FlowID, true)
	if err != nil {
		return nil, err
	}
	keyToAcc, err := pl.matrix(r.FlowID, r.Accumulator, false)
	if err != nil {
		return nil, err
	}
	accToDet, err := pl.matrix(r.Accumulator, r.Detector, false)
	if err != nil {
		return nil, err
	}
	detToSink, err := pl.matrix(r.Detector, r.Sink, false)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < r.Source; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pl.runSource(i, nil, srcToKey[i])
		}(i)
	}

	for j := 0; j < r.FlowID; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			keyer, _ := flowkey.New(pl.cfg.Hash)
			outs := column(srcToKey, j)
			dsts := row(keyToAcc, j)
			consume(outs, func(p *model.Packet) {
				keyer.Identify(p)
				dsts[p.FlowKey%uint64(len(dsts))].push(p)
			}, nil)
			seal(dsts)
		}(j)
	}

	for k := 0; k < r.Accumulator; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			acc, _ := window.New(pl.cfg.Window)
			dsts := row(accToDet, k)
			next := 0
			emit := func(p *model.Packet) {
				dsts[next].push(p)
				next = (next + 1) % len(dsts)
			}
			consume(column(keyToAcc, k), func(p *model.Packet) {
				acc.Process(p, emit)
			}, func() {
				acc.Advance(time.Now().UnixNano(), emit)
			})
			acc.Flush(emit)
			seal(dsts)
		}(k)
	}

	for d := 0; d < r.Detector; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			det := detector.New(pl.cfg.Threshold)
			dsts := row(detToSink, d)
			next := 0
			consume(column(accToDet, d), func(p *model.Packet) {
				if det.Detect(p) {
					dsts[next].push(p)
					next = (next + 1) % len(dsts)
				}
			}, nil)
			pl.detected.Add(det.Passed())
			seal(dsts)
		}(d)
	}

	for s := 0; s < r.Sink; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			rc := sink.NewResultCollector(s)
			mc := sink.NewMetricsCollector(s)
			received := uint64(0)
			consume(column(detToSink, s), func(p *model.Packet) {
				rc.Update(p.FlowKey, p.SrcIPString(), p.DstIPString(), p.WinByteSum)
				mc.Sample(p.TsNs, time.Now().UnixNano())
				received++
			}, nil)
			pl.handoff(rc, mc, received)
		}(s)
	}

	wg.Wait()
	return pl.summarize(time.Since(start))
}

func (pl *Pipeline) runChained() (*Summary, error) {
	r := pl.cfg.Replicas
	pl.results.Register(r.Accumulator)
	pl.metrics.Register(r.Accumulator)

	srcToAcc, err := pl.matrix(r.Source, r.Accumulator, true)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < r.Source; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keyer, _ := flowkey.New(pl.cfg.Hash)
			pl.runSource(i, keyer, srcToAcc[i])
		}(i)
	}

	for k := 0; k < r.Accumulator; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			acc, _ := window.New(pl.cfg.Window)
			det := detector.New(pl.cfg.Threshold)
			rc := sink.NewResultCollector(k)
			mc := sink.NewMetricsCollector(k)
			received := uint64(0)
			emit := func(p *model.Packet) {
				if det.Detect(p) {
					rc.Update(p.FlowKey, p.SrcIPString(), p.DstIPString(), p.WinByteSum)
					mc.Sample(p.TsNs, time.Now().UnixNano())
					received++
				}
			}
			consume(column(srcToAcc, k), func(p *model.Packet) {
				acc.Process(p, emit)
			}, func() {
				acc.Advance(time.Now().UnixNano(), emit)
			})
			acc.Flush(emit)
			pl.detected.Add(det.Passed())
			pl.handoff(rc, mc, received)
		}(k)
	}

	wg.Wait()
	return pl.summarize(time.Since(start))
}

// runSource replays the trace into this replica's outgoing edges. When a
// keyer is supplied (chained mode) the flow id stage is fused here and the
// edge is keyed; otherwise packets round-robin over the flow id replicas.
func (pl *Pipeline) runSource(i int, keyer *flowkey.Keyer, dsts []conduit) {
	src := source.New(i, pl.trace, pl.cfg.GenRate, pl.duration())
	next := 0
	n := src.Run(&pl.stop, func(p *model.Packet) {
		if keyer != nil {
			keyer.Identify(p)
			dsts[p.FlowKey%uint64(len(dsts))].push(p)
			return
		}
		dsts[next].push(p)
		next = (next + 1) % len(dsts)
	})
	pl.generated.Add(n)
	seal(dsts)
}

// handoff passes a finished replica's collections to the aggregators,
// recording the replica as empty when it received nothing.
func (pl *Pipeline) handoff(rc *sink.ResultCollector, mc *sink.MetricsCollector, received uint64) {
	if received == 0 {
		pl.results.RecordEmpty()
		pl.metrics.RecordEmpty()
		return
	}
	pl.results.Absorb(rc)
	pl.metrics.Absorb(mc)
}

func (pl *Pipeline) summarize(elapsed time.Duration) (*Summary, error) {
	hitters, hosts, err := pl.results.Finalize()
	if err != nil {
		return nil, err
	}
	avg, ok, err := pl.metrics.Finalize()
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Generated:    pl.generated.Load(),
		Detected:     pl.detected.Load(),
		Elapsed:      elapsed,
		Hitters:      hitters,
		Hosts:        hosts,
		AvgLatencyMs: avg,
		LatencyOK:    ok,
	}
	if elapsed > 0 {
		s.Throughput = float64(s.Generated) / elapsed.Seconds()
	}
	return s, nil
}

// conduit is one directed SPSC edge between two replicas. push blocks until
// the element is accepted; pop and closed mirror the ring's non-blocking
// protocol.
type conduit interface {
	push(p *model.Packet)
	pop() (*model.Packet, bool)
	closed() bool
	seal()
}

// matrix builds the rows×cols edge set between two adjacent stage groups.
// With line=true it tries the line-clearing ring first and falls back to the
// plain ring when the capacity is below its minimum.
func (pl *Pipeline) matrix(rows, cols int, line bool) ([][]conduit, error) {
	batch := pl.cfg.BatchSize
	if batch < 1 {
		batch = 1
	}

	m := make([][]conduit, rows)
	for i := range m {
		m[i] = make([]conduit, cols)
		for j := range m[i] {
			if line {
				stage := batch
				if stage > pl.cfg.QueueCapacity/2 {
					stage = pl.cfg.QueueCapacity / 2
				}
				if stage < 1 {
					stage = 1
				}
				if q, err := spscq.NewLineQueue[*model.Packet](pl.cfg.QueueCapacity, stage); err == nil {
					m[i][j] = &lineConduit{q: q, batch: stage}
					continue
				}
			}
			q, err := spscq.NewQueue[*model.Packet](pl.cfg.QueueCapacity)
			if err != nil {
				return nil, err
			}
			m[i][j] = &queueConduit{q: q, batch: batch}
		}
	}
	return m, nil
}

func row(m [][]conduit, i int) []conduit { return m[i] }

func column(m [][]conduit, j int) []conduit {
	col := make([]conduit, len(m))
	for i := range m {
		col[i] = m[i][j]
	}
	return col
}

func seal(dsts []conduit) {
	for _, d := range dsts {
		d.seal()
	}
}

// consume drains a set of input edges until all of them are closed and
// empty, invoking handle per element. onPass, if set, runs once per polling
// sweep; the accumulator uses it to fire due window ticks even while no
// packets arrive. After observing a closed edge the consumer polls it once
// more before declaring it drained.
func consume(inputs []conduit, handle func(*model.Packet), onPass func()) {
	done := make([]bool, len(inputs))
	remaining := len(inputs)
	for remaining > 0 {
		progress := false
		for i, in := range inputs {
			if done[i] {
				continue
			}
			if p, ok := in.pop(); ok {
				handle(p)
				progress = true
				continue
			}
			if in.closed() {
				if p, ok := in.pop(); ok {
					handle(p)
					progress = true
				} else {
					done[i] = true
					remaining--
				}
			}
		}
		if onPass != nil {
			onPass()
		}
		if !progress {
			runtime.Gosched()
		}
	}
}

// queueConduit batches producer writes with a private cursor and publishes
// them every batch elements or whenever the ring fills up.
type queueConduit struct {
	q       *spscq.Queue[*model.Packet]
	batch   int
	pending int
}

func (c *queueConduit) push(p *model.Packet) {
	for c.q.WriteSpace(1) == 0 {
		if c.pending > 0 {
			c.q.WritePublish()
			c.pending = 0
		}
		runtime.Gosched()
	}
	c.q.WriteLocal(p)
	c.pending++
	if c.pending >= c.batch {
		c.q.WritePublish()
		c.pending = 0
	}
}

func (c *queueConduit) pop() (*model.Packet, bool) { return c.q.TryPop() }

func (c *queueConduit) closed() bool { return c.q.Closed() }

func (c *queueConduit) seal() {
	if c.pending > 0 {
		c.q.WritePublish()
		c.pending = 0
	}
	c.q.Close()
}

// lineConduit stages writes in the ring's private buffer and publishes them
// in batches; consumed slots are released a cache line at a time.
type lineConduit struct {
	q     *spscq.LineQueue[*model.Packet]
	batch int
}

func (c *lineConduit) push(p *model.Packet) {
	for !c.q.StageLocal(p) {
		if c.q.StagePublish() == 0 {
			runtime.Gosched()
		}
	}
	if c.q.StagedLen() >= c.batch {
		c.q.StagePublish()
	}
}

func (c *lineConduit) pop() (*model.Packet, bool) { return c.q.TryPop() }

func (c *lineConduit) closed() bool { return c.q.Closed() }

func (c *lineConduit) seal() {
	for c.q.StagedLen() > 0 {
		if c.q.StagePublish() == 0 {
			runtime.Gosched()
		}
	}
	c.q.Close()
}
