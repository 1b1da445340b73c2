package aggregate

import (
	"sync"

	"Go2HeavyHitter/internal/engine/sink"
)

// MetricsAggregator merges the latency collections of all sink replicas.
// The global latency is the unweighted mean of the per-replica mean
// latencies over the active replicas, not a mean over all raw samples.
// That trades exactness for simplicity and is kept deliberately.
type MetricsAggregator struct {
	mu         sync.Mutex
	registered int
	empty      int
	collectors []*sink.MetricsCollector
}

// NewMetricsAggregator creates an aggregator expecting no replicas; call
// Register before the pipeline starts.
func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{}
}

// Register sets the number of sink replicas that must report before any
// finalize succeeds.
func (a *MetricsAggregator) Register(replicas int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registered = replicas
}

// RecordEmpty notes a replica that processed zero tuples.
func (a *MetricsAggregator) RecordEmpty() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.empty++
}

// Absorb takes ownership of a finished replica's collector. Safe to call
// concurrently from finishing replicas.
func (a *MetricsAggregator) Absorb(c *sink.MetricsCollector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collectors = append(a.collectors, c)
}

// Active returns the number of replicas that processed at least one tuple.
func (a *MetricsAggregator) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registered - a.empty
}

func (a *MetricsAggregator) readyLocked() bool {
	return a.registered > 0 && len(a.collectors)+a.empty == a.registered
}

// Finalize returns the global average latency in milliseconds. It returns
// ErrWaiting until every registered replica has reported, and ok=false when
// no active replica collected any sample.
func (a *MetricsAggregator) Finalize() (float64, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.readyLocked() {
		return 0, false, ErrWaiting
	}

	var sum float64
	n := 0
	for _, c := range a.collectors {
		if stats, ok := c.Summarize(); ok {
			sum += stats.Mean
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

// Dump writes each absorbed replica's latency report file and returns the
// global average latency. Gated on completeness like Finalize.
func (a *MetricsAggregator) Dump(dir string) (float64, bool, error) {
	a.mu.Lock()
	if !a.readyLocked() {
		a.mu.Unlock()
		return 0, false, ErrWaiting
	}
	collectors := a.collectors
	a.mu.Unlock()

	var sum float64
	n := 0
	for _, c := range collectors {
		mean, ok, err := c.Dump(dir)
		if err != nil {
			return 0, false, err
		}
		if ok {
			sum += mean
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}
