package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	dErrors "instructhub/pkg/domain-errors"
)

// Publisher delivers audit events to a durable sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// KafkaPublisher writes events to the audit topic, keyed by instruction
// reference so all events for one instruction stay ordered.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to the brokers and pings them once.
func NewKafkaPublisher(ctx context.Context, brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create kafka client")
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "ping kafka brokers")
	}
	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "encode audit event")
	}
	record := &kgo.Record{
		Key:   []byte(event.InstructionRef),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.ErrorContext(ctx, "audit event delivery failed",
				"event_id", event.ID,
				"action", string(event.Action),
				"error", err)
		}
	})
	return nil
}

func (p *KafkaPublisher) Close() {
	p.client.Flush(context.Background())
	p.client.Close()
}

// LogPublisher writes events to the structured log. It is the sink used when
// no brokers are configured, so local runs still show an audit trail.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "audit event",
		"event_id", event.ID,
		"action", string(event.Action),
		"actor", event.Actor,
		"instruction_ref", event.InstructionRef)
	return nil
}

func (p *LogPublisher) Close() {}
