package sink

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

const (
	// sampleEvery is the systematic subsampling period: one packet in 16
	// contributes a latency sample.
	sampleEvery = 16
	// maxSamples caps the per-replica sample memory.
	maxSamples = 1000000
)

// Stats is the latency summary of one sample set, all values in
// milliseconds.
type Stats struct {
	Mean    float64
	Min     float64
	Max     float64
	P5      float64
	P25     float64
	P50     float64
	P75     float64
	P95     float64
	Samples int
}

// MetricsCollector gathers end-to-end latency samples in one sink replica.
type MetricsCollector struct {
	replica   int
	latencies []float64
	tuples    uint64
	samples   int
}

// NewMetricsCollector creates an empty collector for the given sink replica.
func NewMetricsCollector(replica int) *MetricsCollector {
	return &MetricsCollector{replica: replica}
}

// Replica returns the owning sink replica index.
func (c *MetricsCollector) Replica() int { return c.replica }

// Sample records the end-to-end latency of the tuple if it falls on the
// subsampling grid: (nowNs - tsNs) converted to milliseconds.
func (c *MetricsCollector) Sample(tsNs, nowNs int64) {
	if c.tuples%sampleEvery == 0 && c.samples < maxSamples {
		c.latencies = append(c.latencies, float64(nowNs-tsNs)/1e6)
		c.samples++
	}
	c.tuples++
}

// Samples returns the number of latency samples collected.
func (c *MetricsCollector) Samples() int { return c.samples }

// Summarize computes mean, min, max and the 5th/25th/50th/75th/95th
// percentiles over the collected samples. Percentiles use linear
// interpolation between closest ranks: the p-quantile of n sorted samples
// is taken at fractional index p*(n-1). The computation is deterministic
// for a given sample multiset. An empty sample set reports ok=false: there
// are no statistics, not zero-valued ones.
func (c *MetricsCollector) Summarize() (Stats, bool) {
	if len(c.latencies) == 0 {
		return Stats{}, false
	}

	sorted := make([]float64, len(c.latencies))
	copy(sorted, c.latencies)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return Stats{
		Mean:    sum / float64(len(sorted)),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		P5:      percentile(sorted, 0.05),
		P25:     percentile(sorted, 0.25),
		P50:     percentile(sorted, 0.50),
		P75:     percentile(sorted, 0.75),
		P95:     percentile(sorted, 0.95),
		Samples: len(sorted),
	}, true
}

// Dump writes the per-replica latency report file and returns the mean
// latency. ok=false means the replica had no samples and wrote nothing.
func (c *MetricsCollector) Dump(dir string) (float64, bool, error) {
	stats, ok := c.Summarize()
	if !ok {
		return 0, false, nil
	}

	path := filepath.Join(dir, fmt.Sprintf("latency_sink%d.txt", c.replica))
	f, err := os.Create(path)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create latency file %q: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "[Sink%d] latency (ms): %g (mean) %g (min) %g (5th) %g (25th) %g (50th) %g (75th) %g (95th) %g (max).\n",
		c.replica, stats.Mean, stats.Min, stats.P5, stats.P25, stats.P50, stats.P75, stats.P95, stats.Max)

	return stats.Mean, true, nil
}

// percentile evaluates the p-quantile of an ascending sample slice by
// linear interpolation at fractional index p*(n-1).
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
