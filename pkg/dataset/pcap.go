package dataset

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"Go2HeavyHitter/internal/model"
)

// LoadPCAP decodes every IPv4 TCP/UDP packet of a pcap file into the in-memory
// trace representation. Non-IP and non-TCP/UDP frames are skipped.
func LoadPCAP(path string) ([]*model.Packet, error) {
	handle, err := pcap.OpenOffline(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pcap file: %w", err)
	}
	defer handle.Close()

	var packets []*model.Packet
	skipped := 0
	source := gopacket.NewPacketSource(handle, handle.LinkType())
	for pkt := range source.Packets() {
		p, err := DecodePacket(pkt)
		if err != nil {
			skipped++
			continue
		}
		packets = append(packets, p)
	}
	if skipped > 0 {
		log.Printf("Skipped %d non-IPv4-TCP/UDP frames.", skipped)
	}
	if len(packets) == 0 {
		return nil, fmt.Errorf("pcap %q holds no usable packets", path)
	}

	log.Printf("Loaded %d packets from %s.", len(packets), path)
	return packets, nil
}

// DecodePacket extracts the header fields the pipeline consumes from one
// decoded frame.
func DecodePacket(pkt gopacket.Packet) (*model.Packet, error) {
	ipLayer := pkt.Layer(layers.LayerTypeIPv4)
	if ipLayer == nil {
		return nil, fmt.Errorf("not an IPv4 packet")
	}
	ip := ipLayer.(*layers.IPv4)

	p := &model.Packet{
		SrcIP:    binary.BigEndian.Uint32(ip.SrcIP.To4()),
		DstIP:    binary.BigEndian.Uint32(ip.DstIP.To4()),
		Protocol: uint8(ip.Protocol),
		PktLen:   uint32(len(pkt.Data())),
		IPLenTot: ip.Length,
		IPLenHdr: uint16(ip.IHL) * 4,
		IPLenPld: ip.Length - uint16(ip.IHL)*4,
	}
	if meta := pkt.Metadata(); meta != nil {
		p.TsNs = meta.Timestamp.UnixNano()
	}

	if l := pkt.Layer(layers.LayerTypeTCP); l != nil {
		tcp := l.(*layers.TCP)
		p.SrcPort = uint16(tcp.SrcPort)
		p.DstPort = uint16(tcp.DstPort)
		p.TrLenHdr = uint16(tcp.DataOffset) * 4
		p.TrLenPld = p.IPLenPld - p.TrLenHdr
		p.Seq = tcp.Seq
		p.Ack = tcp.Ack
		p.Win = tcp.Window
	} else if l := pkt.Layer(layers.LayerTypeUDP); l != nil {
		udp := l.(*layers.UDP)
		p.SrcPort = uint16(udp.SrcPort)
		p.DstPort = uint16(udp.DstPort)
		p.TrLenHdr = 8
		p.TrLenPld = udp.Length - 8
	} else {
		return nil, fmt.Errorf("not a TCP or UDP packet")
	}

	return p, nil
}
