// Package probe moves packet records between a capture host and the analysis
// engine over NATS, serialized as protobuf.
package probe

import (
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	v1 "Go2HeavyHitter/api/gen/v1"
	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

// Publisher publishes packet records to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.ProbeConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes one packet to protobuf and publishes it to the
// configured subject.
func (p *Publisher) Publish(pkt *model.Packet) error {
	data, err := proto.Marshal(PacketToProto(pkt))
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}

// PacketToProto converts a packet to its wire representation. Only the
// fields the analysis consumes cross the wire.
func PacketToProto(p *model.Packet) *v1.PacketInfo {
	return &v1.PacketInfo{
		SrcIp:    p.SrcIP,
		DstIp:    p.DstIP,
		SrcPort:  uint32(p.SrcPort),
		DstPort:  uint32(p.DstPort),
		Protocol: uint32(p.Protocol),
		IpLenTot: uint32(p.IPLenTot),
		TsNs:     p.TsNs,
	}
}

// PacketFromProto converts a wire record back to the in-memory packet.
func PacketFromProto(pb *v1.PacketInfo) *model.Packet {
	return &model.Packet{
		SrcIP:    pb.SrcIp,
		DstIP:    pb.DstIp,
		SrcPort:  uint16(pb.SrcPort),
		DstPort:  uint16(pb.DstPort),
		Protocol: uint8(pb.Protocol),
		IPLenTot: uint16(pb.IpLenTot),
		TsNs:     pb.TsNs,
	}
}
