package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink forwards audit events to a topic for downstream consumers.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

type kafkaPayload struct {
	UserID   string `json:"user_id,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity,omitempty"`
	EntityID string `json:"entity_id,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
	At       string `json:"at"`
}

func (k *KafkaSink) Write(ctx context.Context, ev Event) error {
	p := kafkaPayload{
		Action:   ev.Action,
		Entity:   ev.Entity,
		Metadata: ev.Metadata,
		At:       time.Now().UTC().Format(time.RFC3339),
	}
	if ev.UserID != nil {
		p.UserID = ev.UserID.String()
	}
	if ev.EntityID != nil {
		p.EntityID = ev.EntityID.String()
	}

	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Entity),
		Value: value,
	})
}

func (k *KafkaSink) Close() error {
	return k.writer.Close()
}
