package dataset

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func TestParseIPv4(t *testing.T) {
	v, err := ParseIPv4("10.0.0.1")
	if err != nil {
		t.Fatalf("failed to parse a valid address: %v", err)
	}
	if v != 0x0A000001 {
		t.Errorf("expected 0x0A000001, got 0x%08X", v)
	}

	if _, err := ParseIPv4("not-an-ip"); err == nil {
		t.Error("expected an error for a malformed address")
	}
	if _, err := ParseIPv4("2001:db8::1"); err == nil {
		t.Error("expected an error for an IPv6 address")
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.csv")
	content := "" +
		"1425873600.0,10.0.0.1,192.168.0.1,6,1518,1500,20,1480,32,1448,443,51000,1,2,512\n" +
		"garbage line with too few columns\n" +
		"1425873600.1,10.0.0.2,192.168.0.1,17,86,68,20,48,8,40,53,51001,0,0,0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	packets, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("expected 2 packets with the malformed record skipped, got %d", len(packets))
	}

	p := packets[0]
	if p.SrcIP != 0x0A000001 || p.DstIP != 0xC0A80001 {
		t.Errorf("unexpected addresses: src=0x%08X dst=0x%08X", p.SrcIP, p.DstIP)
	}
	if p.Protocol != 6 || p.IPLenTot != 1500 || p.SrcPort != 443 || p.DstPort != 51000 {
		t.Errorf("unexpected header fields: %+v", p)
	}
	if p.Seq != 1 || p.Ack != 2 || p.Win != 512 {
		t.Errorf("unexpected TCP fields: %+v", p)
	}
	if packets[1].Protocol != 17 || packets[1].TrLenHdr != 8 {
		t.Errorf("unexpected second record: %+v", packets[1])
	}
}

func TestLoadCSVAllMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("only,three,columns\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCSV(path); err == nil {
		t.Error("a dataset with no usable packets must be rejected")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("trace.json"); err == nil {
		t.Error("expected an error for an unsupported dataset format")
	}
}

func TestDecodePacket(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
		DstMAC:       net.HardwareAddr{0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IPv4(10, 0, 0, 1),
		DstIP:    net.IPv4(192, 168, 0, 1),
	}
	tcp := &layers.TCP{
		SrcPort: 443,
		DstPort: 51000,
		Seq:     100,
		Ack:     200,
		Window:  1024,
	}
	tcp.SetNetworkLayerForChecksum(ip)

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	payload := gopacket.Payload([]byte("heavy hitter test payload"))
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp, payload); err != nil {
		t.Fatalf("failed to serialize the test frame: %v", err)
	}

	pkt := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	p, err := DecodePacket(pkt)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if p.SrcIP != 0x0A000001 || p.DstIP != 0xC0A80001 {
		t.Errorf("unexpected addresses: src=0x%08X dst=0x%08X", p.SrcIP, p.DstIP)
	}
	if p.Protocol != 6 || p.SrcPort != 443 || p.DstPort != 51000 {
		t.Errorf("unexpected five-tuple fields: %+v", p)
	}
	if p.IPLenHdr != 20 || p.TrLenHdr != 20 {
		t.Errorf("unexpected header lengths: ip=%d tr=%d", p.IPLenHdr, p.TrLenHdr)
	}
	if p.TrLenPld != uint16(len(payload)) {
		t.Errorf("expected transport payload length %d, got %d", len(payload), p.TrLenPld)
	}
	if p.Seq != 100 || p.Ack != 200 || p.Win != 1024 {
		t.Errorf("unexpected TCP fields: %+v", p)
	}
}

func TestDecodePacketRejectsNonIPv4(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
		DstMAC:       net.HardwareAddr{0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   eth.SrcMAC,
		SourceProtAddress: []byte{10, 0, 0, 1},
		DstHwAddress:      make([]byte, 6),
		DstProtAddress:    []byte{10, 0, 0, 2},
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, eth, arp); err != nil {
		t.Fatalf("failed to serialize the test frame: %v", err)
	}

	pkt := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	if _, err := DecodePacket(pkt); err == nil {
		t.Error("expected an error for a non-IPv4 frame")
	}
}
