// Package flowkey derives the 64-bit flow identifier of a packet from its
// source/destination address pair. Ports and protocol are ignored: two hosts
// exchanging traffic over many connections still form one flow.
package flowkey

import (
	"fmt"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

// linkOverhead is the per-packet link layer overhead in bytes added on top
// of the IP datagram length: 14 bytes of MAC header plus 4 bytes of CRC.
const linkOverhead = 18

// Keyer computes flow keys. The zero Keyer is not usable; construct it with
// New so the hash algorithm is fixed up front.
type Keyer struct {
	symmetric bool
}

// New returns a Keyer using the named hash algorithm from the configuration.
func New(hash string) (*Keyer, error) {
	switch hash {
	case config.HashXor:
		return &Keyer{symmetric: true}, nil
	case config.HashMultiplicative:
		return &Keyer{symmetric: false}, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", hash)
	}
}

// Symmetric reports whether (A,B) and (B,A) map to the same key.
func (k *Keyer) Symmetric() bool { return k.symmetric }

// Identify derives the flow key and the header-inclusive total length of the
// packet and writes both onto it. It always succeeds: all-zero addresses
// yield the legal degenerate flow key 0.
func (k *Keyer) Identify(p *model.Packet) {
	if k.symmetric {
		p.FlowKey = uint64(p.SrcIP) ^ uint64(p.DstIP)
	} else {
		h := uint64(17)
		h = h*17 + uint64(p.SrcIP)
		h = h*17 + uint64(p.DstIP)
		p.FlowKey = h
	}
	p.TotalLen = uint32(p.IPLenTot) + linkOverhead
}
