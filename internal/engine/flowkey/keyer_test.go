package flowkey

import (
	"testing"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

func TestNewRejectsUnknownHash(t *testing.T) {
	if _, err := New("fnv"); err == nil {
		t.Fatal("expected an error for an unknown hash algorithm")
	}
}

func TestIdentifyDeterministic(t *testing.T) {
	for _, hash := range []string{config.HashXor, config.HashMultiplicative} {
		k, err := New(hash)
		if err != nil {
			t.Fatalf("failed to create keyer: %v", err)
		}

		a := &model.Packet{SrcIP: 0x0a000001, DstIP: 0xc0a80001, IPLenTot: 1480}
		b := &model.Packet{SrcIP: 0x0a000001, DstIP: 0xc0a80001, IPLenTot: 40}
		k.Identify(a)
		k.Identify(b)
		if a.FlowKey != b.FlowKey {
			t.Errorf("%s: identical address pairs must yield identical keys, got %d and %d",
				hash, a.FlowKey, b.FlowKey)
		}
	}
}

func TestIdentifySymmetry(t *testing.T) {
	fwd := &model.Packet{SrcIP: 0x0a000001, DstIP: 0xc0a80001}
	rev := &model.Packet{SrcIP: 0xc0a80001, DstIP: 0x0a000001}

	xor, _ := New(config.HashXor)
	xor.Identify(fwd)
	xor.Identify(rev)
	if fwd.FlowKey != rev.FlowKey {
		t.Errorf("xor hash must be order-symmetric, got %d and %d", fwd.FlowKey, rev.FlowKey)
	}

	mul, _ := New(config.HashMultiplicative)
	mul.Identify(fwd)
	mul.Identify(rev)
	if fwd.FlowKey == rev.FlowKey {
		t.Errorf("multiplicative hash must be order-sensitive, both keys are %d", fwd.FlowKey)
	}
}

func TestIdentifyZeroAddresses(t *testing.T) {
	k, _ := New(config.HashXor)
	p := &model.Packet{IPLenTot: 60}
	k.Identify(p)
	if p.FlowKey != 0 {
		t.Errorf("all-zero addresses should map to the degenerate flow key 0, got %d", p.FlowKey)
	}
	if p.TotalLen != 60+18 {
		t.Errorf("expected total length 78 including link overhead, got %d", p.TotalLen)
	}
}

func TestIdentifyTotalLen(t *testing.T) {
	k, _ := New(config.HashMultiplicative)
	p := &model.Packet{SrcIP: 1, DstIP: 2, IPLenTot: 1500}
	k.Identify(p)
	if p.TotalLen != 1518 {
		t.Errorf("expected header-inclusive length 1518, got %d", p.TotalLen)
	}
}
