// Package sink holds the per-replica terminal state of the pipeline: the
// heavy hitter result collection and the latency sample collection. Each
// collector is owned by exactly one sink replica and is only handed to the
// process-wide aggregators once, when the replica finishes.
package sink

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Record is the best-known observation of one heavy hitter flow: the peak
// windowed byte sum seen across the whole run, not the latest one.
type Record struct {
	SrcText  string
	DstText  string
	BytePeak uint64
}

// ResultCollector accumulates the heavy hitter flows detected by one sink
// replica, keyed by flow id.
type ResultCollector struct {
	replica int
	hitters map[uint64]*Record
}

// NewResultCollector creates an empty collector for the given sink replica.
func NewResultCollector(replica int) *ResultCollector {
	return &ResultCollector{
		replica: replica,
		hitters: make(map[uint64]*Record),
	}
}

// Replica returns the owning sink replica index.
func (c *ResultCollector) Replica() int { return c.replica }

// Update folds one detected candidate into the collection. A new flow is
// inserted; a known flow keeps the larger byte sum (max-combine).
func (c *ResultCollector) Update(flowKey uint64, srcText, dstText string, byteSum uint64) {
	if rec, ok := c.hitters[flowKey]; ok {
		if rec.BytePeak < byteSum {
			rec.BytePeak = byteSum
		}
		return
	}
	c.hitters[flowKey] = &Record{
		SrcText:  srcText,
		DstText:  dstText,
		BytePeak: byteSum,
	}
}

// Size returns the number of distinct heavy hitter flows recorded.
func (c *ResultCollector) Size() int { return len(c.hitters) }

// Collection exposes the underlying map for the final merge. The collector
// must not be updated after this point.
func (c *ResultCollector) Collection() map[uint64]*Record { return c.hitters }

// Dump writes the per-replica report file and returns the number of
// distinct flows recorded.
func (c *ResultCollector) Dump(dir string) (int, error) {
	if len(c.hitters) == 0 {
		log.Printf("[Sink-%d] no heavy hitters found.", c.replica)
		return 0, nil
	}

	path := filepath.Join(dir, fmt.Sprintf("report_sink%d.txt", c.replica))
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create report file %q: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "[Sink%d-REPORT]\n", c.replica)
	for _, rec := range c.hitters {
		fmt.Fprintf(f, "%s from %s : max peak %d exchanged bytes\n",
			rec.DstText, rec.SrcText, rec.BytePeak)
	}

	return len(c.hitters), nil
}
