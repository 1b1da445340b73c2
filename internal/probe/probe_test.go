package probe

import (
	"testing"

	"google.golang.org/protobuf/proto"

	v1 "Go2HeavyHitter/api/gen/v1"
	"Go2HeavyHitter/internal/model"
)

func TestPacketWireRoundTrip(t *testing.T) {
	in := &model.Packet{
		TsNs:     1716000000000000000,
		SrcIP:    0x0A000001,
		DstIP:    0xC0A80001,
		SrcPort:  443,
		DstPort:  51000,
		Protocol: 6,
		IPLenTot: 1500,
	}

	data, err := proto.Marshal(PacketToProto(in))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var pb v1.PacketInfo
	if err := proto.Unmarshal(data, &pb); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	out := PacketFromProto(&pb)
	if out.SrcIP != in.SrcIP || out.DstIP != in.DstIP {
		t.Errorf("addresses did not survive the wire: %+v", out)
	}
	if out.SrcPort != in.SrcPort || out.DstPort != in.DstPort || out.Protocol != in.Protocol {
		t.Errorf("five-tuple fields did not survive the wire: %+v", out)
	}
	if out.IPLenTot != in.IPLenTot || out.TsNs != in.TsNs {
		t.Errorf("length or timestamp did not survive the wire: %+v", out)
	}
}
