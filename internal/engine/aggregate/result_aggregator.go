// Package aggregate merges the per-replica collections produced by the sink
// stage into one process-wide view. The aggregators are the only pieces of
// state shared across replica goroutines; every merge runs under a mutex
// held only for the duration of the map updates.
package aggregate

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"Go2HeavyHitter/internal/engine/sink"
)

// ErrWaiting is reported by finalize operations invoked before every
// registered replica has either been absorbed or recorded as empty. The
// caller re-queries later; a premature finalize never yields a partial
// result.
var ErrWaiting = errors.New("waiting for sink replicas to terminate")

// ResultAggregator merges the heavy hitter collections of all sink replicas
// into one duplicate-free global map.
type ResultAggregator struct {
	mu         sync.Mutex
	registered int
	empty      int
	collectors []*sink.ResultCollector
}

// NewResultAggregator creates an aggregator expecting no replicas; call
// Register before the pipeline starts.
func NewResultAggregator() *ResultAggregator {
	return &ResultAggregator{}
}

// Register sets the number of sink replicas the aggregator must hear from
// before any finalize succeeds.
func (a *ResultAggregator) Register(replicas int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registered = replicas
}

// RecordEmpty notes a replica that processed zero tuples. Such replicas are
// excluded from the completeness check and contribute nothing to the merge.
func (a *ResultAggregator) RecordEmpty() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.empty++
}

// Absorb takes ownership of a finished replica's collector. Safe to call
// concurrently from finishing replicas.
func (a *ResultAggregator) Absorb(c *sink.ResultCollector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collectors = append(a.collectors, c)
}

// Active returns the number of replicas that processed at least one tuple.
func (a *ResultAggregator) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registered - a.empty
}

func (a *ResultAggregator) readyLocked() bool {
	return a.registered > 0 && len(a.collectors)+a.empty == a.registered
}

// Finalize merges all absorbed collections with max-combine on the byte
// peak and returns the global map plus the deduplicated, sorted set of
// destination hosts targeted by any heavy hitter flow. It returns
// ErrWaiting until every registered replica has reported.
func (a *ResultAggregator) Finalize() (map[uint64]sink.Record, []string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.readyLocked() {
		return nil, nil, ErrWaiting
	}

	merged := make(map[uint64]sink.Record)
	for _, c := range a.collectors {
		for key, rec := range c.Collection() {
			if cur, ok := merged[key]; !ok || cur.BytePeak < rec.BytePeak {
				merged[key] = *rec
			}
		}
	}

	hostSet := make(map[string]struct{})
	for _, rec := range merged {
		hostSet[rec.DstText] = struct{}{}
	}
	hosts := make([]string, 0, len(hostSet))
	for h := range hostSet {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)

	return merged, hosts, nil
}

// DumpPerReplica writes each absorbed replica's report file and returns the
// number of active replicas. Gated on completeness like Finalize.
func (a *ResultAggregator) DumpPerReplica(dir string) (int, error) {
	a.mu.Lock()
	collectors := a.collectors
	if !a.readyLocked() {
		a.mu.Unlock()
		return 0, ErrWaiting
	}
	active := a.registered - a.empty
	a.mu.Unlock()

	for _, c := range collectors {
		if _, err := c.Dump(dir); err != nil {
			return 0, err
		}
	}
	return active, nil
}

// DumpAggregated writes the global report listing the deduplicated
// destination hosts and returns their count.
func (a *ResultAggregator) DumpAggregated(dir string) (int, error) {
	_, hosts, err := a.Finalize()
	if err != nil {
		return 0, err
	}
	if len(hosts) == 0 {
		log.Println("[Aggregator] no heavy hitter results available.")
		return 0, nil
	}

	path := filepath.Join(dir, "heavy_hitters.txt")
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create global report %q: %w", path, err)
	}
	defer f.Close()

	fmt.Fprint(f, "[Heavy Hitters - GLOBAL REPORT]\nList of destination hosts targeted:\n")
	for _, h := range hosts {
		fmt.Fprintln(f, h)
	}

	return len(hosts), nil
}
