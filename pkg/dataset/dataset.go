// Package dataset loads a packet trace fully into memory so the pipeline
// source can replay it cyclically. Two on-disk layouts are supported: the
// 15-column CSV dump of a capture and the original pcap file.
package dataset

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"Go2HeavyHitter/internal/model"
)

// CSV column layout of a dumped capture:
// ts, ip_src, ip_dst, protocol, pkt_len, ip_len_tot, ip_len_hdr, ip_len_pld,
// tr_len_hdr, tr_len_pld, port_src, port_dst, seq, ack, win
const csvColumns = 15

// Load reads a dataset file, dispatching on the file extension (.csv or
// .pcap). The returned slice is never empty on success.
func Load(path string) ([]*model.Packet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".pcap":
		return LoadPCAP(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// LoadCSV parses a 15-column CSV capture dump. Malformed records are data
// errors: they are logged and skipped, never propagated as a failure.
func LoadCSV(path string) ([]*model.Packet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // validated per record below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	packets := make([]*model.Packet, 0, len(records))
	skipped := 0
	for i, rec := range records {
		p, err := parseRecord(rec)
		if err != nil {
			log.Printf("Skipping malformed record %d: %v", i, err)
			skipped++
			continue
		}
		packets = append(packets, p)
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed records out of %d.", skipped, len(records))
	}
	if len(packets) == 0 {
		return nil, fmt.Errorf("dataset %q holds no usable packets", path)
	}

	log.Printf("Loaded %d packets from %s.", len(packets), path)
	return packets, nil
}

func parseRecord(rec []string) (*model.Packet, error) {
	if len(rec) != csvColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", csvColumns, len(rec))
	}

	srcIP, err := ParseIPv4(strings.TrimSpace(rec[1]))
	if err != nil {
		return nil, err
	}
	dstIP, err := ParseIPv4(strings.TrimSpace(rec[2]))
	if err != nil {
		return nil, err
	}

	fields := make([]uint64, csvColumns)
	for _, i := range []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14} {
		v, err := strconv.ParseUint(strings.TrimSpace(rec[i]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		fields[i] = v
	}

	return &model.Packet{
		SrcIP:    srcIP,
		DstIP:    dstIP,
		Protocol: uint8(fields[3]),
		PktLen:   uint32(fields[4]),
		IPLenTot: uint16(fields[5]),
		IPLenHdr: uint16(fields[6]),
		IPLenPld: uint16(fields[7]),
		TrLenHdr: uint16(fields[8]),
		TrLenPld: uint16(fields[9]),
		SrcPort:  uint16(fields[10]),
		DstPort:  uint16(fields[11]),
		Seq:      uint32(fields[12]),
		Ack:      uint32(fields[13]),
		Win:      uint16(fields[14]),
	}, nil
}

// ParseIPv4 converts a dotted-decimal IPv4 string into a host-order uint32.
func ParseIPv4(s string) (uint32, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, fmt.Errorf("invalid IPv4 address %q", s)
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0, fmt.Errorf("address %q is not IPv4", s)
	}
	return binary.BigEndian.Uint32(v4), nil
}
