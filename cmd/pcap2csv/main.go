// pcap2csv converts a pcap capture into the 15-column CSV layout consumed by
// the pipeline's dataset loader.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"Go2HeavyHitter/pkg/dataset"
)

func main() {
	in := flag.String("in", "", "Input pcap file.")
	out := flag.String("out", "", "Output CSV file.")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(1)
	}

	packets, err := dataset.LoadPCAP(*in)
	if err != nil {
		log.Fatalf("Failed to load pcap: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range packets {
		fmt.Fprintf(w, "%.6f,%s,%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
			float64(p.TsNs)/1e9,
			p.SrcIPString(), p.DstIPString(), p.Protocol,
			p.PktLen, p.IPLenTot, p.IPLenHdr, p.IPLenPld,
			p.TrLenHdr, p.TrLenPld,
			p.SrcPort, p.DstPort,
			p.Seq, p.Ack, p.Win)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	log.Printf("Wrote %d records to %s.", len(packets), *out)
}
