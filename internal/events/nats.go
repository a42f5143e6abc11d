package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NATSPublisher bridges bus events to NATS subjects for out-of-process
// consumers (analytics, email senders). The in-process observer contract is
// unaffected: bridging is best-effort and never fails a mutation.
type NATSPublisher struct {
	nc            *nats.Conn
	subjectPrefix string
	logger        zerolog.Logger
}

// NewNATSPublisher connects to a NATS server and returns a publisher.
func NewNATSPublisher(url, subjectPrefix string, logger zerolog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("eststy-store"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{nc: nc, subjectPrefix: subjectPrefix, logger: logger}, nil
}

// Bridge subscribes the publisher to a bus and returns the unsubscribe
// function.
func (p *NATSPublisher) Bridge(bus *Bus) func() {
	return bus.Subscribe(p.publish)
}

func (p *NATSPublisher) publish(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		p.logger.Error().Err(err).Str("type", string(e.Type)).Msg("failed to marshal event")
		return
	}

	subject := fmt.Sprintf("%s.%s", p.subjectPrefix, e.Type)
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to drain NATS connection")
	}
}
