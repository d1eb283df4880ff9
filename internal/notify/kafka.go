package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Kafka publishes notification events through an async producer. Delivery
// errors are drained and logged, never surfaced to the mutation path.
type Kafka struct {
	producer sarama.AsyncProducer
	topic    string
	log      *slog.Logger
}

func NewKafka(brokers []string, topic string, log *slog.Logger) (*Kafka, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	k := &Kafka{producer: producer, topic: topic, log: log}
	go k.drainErrors()
	return k, nil
}

func (k *Kafka) BookingCreated(ctx context.Context, guestID, bookingID int64) {
	k.publish(KindBookingCreated, guestID, bookingID)
}

func (k *Kafka) StayFinished(ctx context.Context, guestID, bookingID int64) {
	k.publish(KindStayFinished, guestID, bookingID)
}

func (k *Kafka) publish(kind string, guestID, bookingID int64) {
	ev := Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		GuestID:   guestID,
		BookingID: bookingID,
		At:        time.Now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		k.log.Warn("notification marshal failed", "kind", kind, "err", err)
		return
	}
	k.producer.Input() <- &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(ev.ID),
		Value: sarama.ByteEncoder(payload),
	}
}

func (k *Kafka) drainErrors() {
	for err := range k.producer.Errors() {
		k.log.Warn("notification delivery failed", "err", err.Err)
	}
}

func (k *Kafka) Close() error { return k.producer.Close() }
