package events

import (
	"context"
	"encoding/json"

	skafka "github.com/segmentio/kafka-go"

	"encore.dev/rlog"
)

// Writer defines the subset of segmentio kafka.Writer we need, so the
// publisher stays testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher is the interface the business layer uses to emit domain events
// to the reporting pipeline.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// KafkaPublisher is a thin wrapper around a kafka writer implementing Publisher.
type KafkaPublisher struct {
	writer Writer
}

func NewKafkaPublisher(brokerURL, topic string) *KafkaPublisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: w}
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish marshals the value to JSON and writes a kafka message with the given key.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		rlog.Error("failed to marshal event", "key", key, "error", err)
		return err
	}
	msg := skafka.Message{Key: []byte(key), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		rlog.Error("kafka write failed", "key", key, "error", err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when no broker is configured, e.g. in
// local development.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, value interface{}) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }
