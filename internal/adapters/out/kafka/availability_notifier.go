// Package kafka publishes integration events to the message broker. The
// availability notifier feeds the external notification sender, which owns
// message content and delivery channels.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// availabilityRequestEvent is the wire format of an availability-request
// event. The notification sender resolves the template and channel from the
// party role and contact details.
type availabilityRequestEvent struct {
	OrderID      string `json:"order_id"`
	Party        string `json:"party"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	City         string `json:"city"`
	RequestedAt  string `json:"requested_at"`
	EventVersion int    `json:"event_version"`
}

// AvailabilityNotifier implements ports.AvailabilityNotifier on a Kafka
// topic. Publishing is synchronous: the caller holds an open transaction and
// rolls the state change back when the event cannot be produced.
type AvailabilityNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewAvailabilityNotifier creates a notifier with its own synchronous
// producer connected to the given brokers.
func NewAvailabilityNotifier(brokers []string, topic string, logger *slog.Logger) (*AvailabilityNotifier, error) {
	if topic == "" {
		return nil, fmt.Errorf("availability requests topic is empty")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewAvailabilityNotifierWithProducer(producer, topic, logger), nil
}

// NewAvailabilityNotifierWithProducer creates a notifier over an existing
// producer. Used by tests with a mock producer.
func NewAvailabilityNotifierWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) *AvailabilityNotifier {
	return &AvailabilityNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "availability_notifier"),
	}
}

// PublishAvailabilityRequest emits an availability-request event for the
// given party of the order. Messages are keyed by order id so all events of
// one order stay in partition order.
func (n *AvailabilityNotifier) PublishAvailabilityRequest(
	ctx context.Context,
	aggregate *order.Order,
	party order.PartyRole,
) error {
	contact := aggregate.Sender()
	if party == order.ReceiverParty {
		contact = aggregate.Receiver()
	}

	event := availabilityRequestEvent{
		OrderID:      aggregate.ID().String(),
		Party:        party.String(),
		Name:         contact.Name(),
		Phone:        contact.Phone(),
		Email:        contact.Email(),
		City:         contact.Address().City(),
		RequestedAt:  time.Now().UTC().Format(time.RFC3339),
		EventVersion: 1,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal availability request event: %w", err)
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish availability request for order %s: %w", event.OrderID, err)
	}

	n.logger.InfoContext(ctx, "Availability request published",
		"order_id", event.OrderID,
		"party", event.Party,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close releases the underlying producer.
func (n *AvailabilityNotifier) Close() error {
	return n.producer.Close()
}
