// Package kafka streams audit events to a Kafka topic so downstream
// compliance consumers can index them without touching the ledger database.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"pbmledger/internal/audit"
)

// Publisher delivers audit events to a Kafka topic.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// payload is the JSON structure published to Kafka.
type payload struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	Action        string `json:"action"`
	Actor         string `json:"actor"`
	TypeID        uint64 `json:"type_id"`
	Category      string `json:"category,omitempty"`
	TargetTypeID  uint64 `json:"target_type_id,omitempty"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	Quantity      uint64 `json:"quantity"`
	ReserveAmount uint64 `json:"reserve_amount"`
	RequestID     string `json:"request_id,omitempty"`
}

// New connects to the brokers and ensures the topic exists.
func New(ctx context.Context, brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := ensureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}

	return &Publisher{client: client, topic: topic}, nil
}

// ensureTopic creates the audit topic when it does not exist yet.
func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("create audit topic: %w", err)
	}
	for _, res := range resp {
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create audit topic %s: %w", res.Topic, res.Err)
		}
	}
	return nil
}

// Publish implements audit.Sink. Events are keyed by actor so one
// institution's trail stays ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, event audit.Event) error {
	value, err := json.Marshal(payload{
		ID:            event.ID,
		Timestamp:     event.Timestamp.UTC().Format(time.RFC3339Nano),
		Action:        string(event.Action),
		Actor:         event.Actor.String(),
		TypeID:        uint64(event.TypeID),
		Category:      event.Category.String(),
		TargetTypeID:  uint64(event.TargetTypeID),
		From:          event.From.String(),
		To:            event.To.String(),
		Quantity:      event.Quantity,
		ReserveAmount: event.ReserveAmount,
		RequestID:     event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Actor.String()),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes and releases the Kafka client.
func (p *Publisher) Close() {
	p.client.Close()
}
