package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"

	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
	"Go2HeavyHitter/internal/probe"
	"Go2HeavyHitter/pkg/dataset"
)

const (
	snapshotLen int32 = 1600
	promiscuous       = true
	timeout           = pcap.BlockForever
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the YAML configuration file.")
	mode := flag.String("mode", "sub", "Operating mode: 'pub' to capture and publish, 'sub' to subscribe and print.")
	iface := flag.String("iface", "", "Interface to capture packets from (pub mode).")
	file := flag.String("file", "", "Dataset file to replay instead of live capture (pub mode).")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch *mode {
	case "pub":
		runProbe(cfg.Probe, *iface, *file)
	case "sub":
		runSubscriber(cfg.Probe)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runProbe captures or replays packets and publishes them to NATS.
func runProbe(cfg config.ProbeConfig, interfaceName, file string) {
	if interfaceName == "" && file == "" {
		log.Println("Error: pub mode needs either -iface or -file.")
		flag.Usage()
		os.Exit(1)
	}

	pub, err := probe.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	if file != "" {
		replayFile(pub, file)
		return
	}

	log.Printf("Starting hh-probe in PROBE mode on interface: %s", interfaceName)
	handle, err := pcap.OpenLive(interfaceName, snapshotLen, promiscuous, timeout)
	if err != nil {
		log.Fatalf("Error opening device %s: %v", interfaceName, err)
	}
	defer handle.Close()

	log.Println("Capture started successfully. Publishing packets to NATS...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
		published := 0
		for pkt := range packetSource.Packets() {
			p, err := dataset.DecodePacket(pkt)
			if err != nil {
				continue // skip non-IPv4-TCP/UDP frames
			}
			if err := pub.Publish(p); err != nil {
				log.Printf("Failed to publish packet: %v", err)
			}
			published++
			if published%1000 == 0 {
				log.Printf("%d packets published...", published)
			}
		}
	}()

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}

// replayFile publishes every packet of a dataset file once.
func replayFile(pub *probe.Publisher, file string) {
	packets, err := dataset.Load(file)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	for i, p := range packets {
		if err := pub.Publish(p); err != nil {
			log.Printf("Failed to publish packet: %v", err)
		}
		if (i+1)%1000 == 0 {
			log.Printf("%d packets published...", i+1)
		}
	}
	log.Printf("Replay finished: %d packets published.", len(packets))
}

// runSubscriber subscribes to NATS and prints the decoded packets.
func runSubscriber(cfg config.ProbeConfig) {
	log.Println("Starting hh-probe in SUBSCRIBER mode...")

	sub, err := probe.NewSubscriber(cfg)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	defer sub.Close()

	handler := func(p *model.Packet) {
		log.Printf("Received packet: %s", p)
	}

	if err := sub.Start(handler); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
