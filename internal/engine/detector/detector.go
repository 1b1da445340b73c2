// Package detector filters window snapshots down to heavy hitter candidates.
package detector

import "Go2HeavyHitter/internal/model"

// Detector is a stateless threshold filter: a snapshot passes only if its
// windowed byte sum strictly exceeds the threshold. The counters exist for
// the end-of-run summary only and never influence a verdict.
type Detector struct {
	Threshold uint64

	processed uint64
	passed    uint64
}

// New creates a detector with the given byte threshold.
func New(threshold uint64) *Detector {
	return &Detector{Threshold: threshold}
}

// Detect returns true when the snapshot is a heavy hitter candidate.
// Snapshots carrying the zero-timestamp sentinel are invalid and silently
// dropped: they are neither detections nor errors.
func (d *Detector) Detect(p *model.Packet) bool {
	if p.TsNs == 0 {
		return false
	}
	d.processed++
	if p.WinByteSum > d.Threshold {
		d.passed++
		return true
	}
	return false
}

// Processed returns the number of valid snapshots examined.
func (d *Detector) Processed() uint64 { return d.processed }

// Passed returns the number of snapshots that exceeded the threshold.
func (d *Detector) Passed() uint64 { return d.passed }
