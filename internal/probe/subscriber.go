package probe

import (
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	v1 "Go2HeavyHitter/api/gen/v1"
	"Go2HeavyHitter/internal/config"
	"Go2HeavyHitter/internal/model"
)

// PacketHandler processes one received packet record.
type PacketHandler func(p *model.Packet)

// Subscriber subscribes to a NATS subject and decodes packet records.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(cfg config.ProbeConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{nc: nc, subject: cfg.Subject}, nil
}

// Start subscribes to the configured subject and invokes the handler per
// decoded record. Undecodable messages are logged and dropped.
func (s *Subscriber) Start(handler PacketHandler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		var pb v1.PacketInfo
		if err := proto.Unmarshal(msg.Data, &pb); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			return
		}
		handler(PacketFromProto(&pb))
	})
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for messages...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
