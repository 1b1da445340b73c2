package model

import (
	"fmt"
	"net"
)

// Packet holds the metadata of a single parsed network packet as it travels
// through the pipeline. The immutable header fields are set once by the
// dataset loader; TsNs is stamped by the source at emission time; FlowKey and
// TotalLen are derived by the flow identifier stage; WinByteSum is filled in
// by the window accumulator. A Packet is exclusively owned by the stage
// currently processing it and handed downstream by pointer.
type Packet struct {
	TsNs int64 // ingestion timestamp, monotonic nanoseconds

	SrcIP    uint32 // IPv4 source address, host byte order
	DstIP    uint32 // IPv4 destination address, host byte order
	SrcPort  uint16
	DstPort  uint16
	Protocol uint8

	PktLen   uint32 // captured length on the wire
	IPLenTot uint16 // total IP datagram length
	IPLenHdr uint16 // IP header length
	IPLenPld uint16 // IP payload length
	TrLenHdr uint16 // transport header length
	TrLenPld uint16 // transport payload length

	// TCP only, zero otherwise.
	Seq uint32
	Ack uint32
	Win uint16

	FlowKey    uint64 // derived by the flow identifier
	TotalLen   uint32 // header-inclusive packet size, derived by the flow identifier
	WinByteSum uint64 // windowed byte sum, derived by the accumulator
}

// IPToString renders a host-order IPv4 address in dotted-decimal form.
func IPToString(addr uint32) string {
	return net.IPv4(byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr)).String()
}

// SrcIPString returns the dotted-decimal source address.
func (p *Packet) SrcIPString() string {
	return IPToString(p.SrcIP)
}

// DstIPString returns the dotted-decimal destination address.
func (p *Packet) DstIPString() string {
	return IPToString(p.DstIP)
}

// String returns a compact one-line rendering used in debug logging.
func (p *Packet) String() string {
	return fmt.Sprintf("flow %d: %s -> %s, %d bytes, ts %d",
		p.FlowKey, p.SrcIPString(), p.DstIPString(), p.TotalLen, p.TsNs)
}
