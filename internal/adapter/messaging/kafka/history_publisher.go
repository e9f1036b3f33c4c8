package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"country-limits/config"
	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// producer is the part of *kgo.Client the publisher needs.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Ping(ctx context.Context) error
	Close()
}

// HistoryMessage is the wire form of one resolved limit request.
type HistoryMessage struct {
	EventID     string               `json:"event_id"`
	CountryCode string               `json:"country_code"`
	Version     int64                `json:"version"`
	Kind        domain.EventKind     `json:"kind"`
	Actor       string               `json:"actor"`
	History     domain.HistoryRecord `json:"history"`
}

// HistoryPublisher streams every terminal transition to a Kafka topic,
// keyed by country code so one country's messages share a partition.
// Concurrent transitions may be produced out of commit order; consumers
// order them by Version. Non-terminal events are ignored.
type HistoryPublisher struct {
	client producer
	topic  string
	log    zerolog.Logger
}

var _ ports.ChangeNotifier = (*HistoryPublisher)(nil)

// NewHistoryPublisher connects to the configured brokers.
func NewHistoryPublisher(ctx context.Context, cfg config.KafkaConfig, log zerolog.Logger) (*HistoryPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ClientID("country-limits"),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging kafka: %w", err)
	}

	log.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka producer ready")
	return newHistoryPublisher(client, cfg.Topic, log), nil
}

func newHistoryPublisher(client producer, topic string, log zerolog.Logger) *HistoryPublisher {
	return &HistoryPublisher{client: client, topic: topic, log: log}
}

// Notify produces one record per history entry and waits for the ack.
func (p *HistoryPublisher) Notify(ctx context.Context, event domain.RegistryEvent) error {
	if !event.Kind.IsTerminal() || event.History == nil {
		return nil
	}

	value, err := json.Marshal(HistoryMessage{
		EventID:     event.ID.String(),
		CountryCode: event.Code,
		Version:     event.Version,
		Kind:        event.Kind,
		Actor:       event.Actor,
		History:     *event.History,
	})
	if err != nil {
		return fmt.Errorf("marshal history message: %w", err)
	}

	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Code),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "history_id", Value: []byte(event.History.ID.String())},
		},
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce history %s: %w", event.History.ID, err)
	}

	p.log.Debug().Str("code", event.Code).Str("kind", string(event.Kind)).Msg("history published")
	return nil
}

// Ping implements ports.HealthChecker for the Kafka cluster.
func (p *HistoryPublisher) Ping(ctx context.Context) error { return p.client.Ping(ctx) }

// Name returns the dependency name.
func (p *HistoryPublisher) Name() string { return "kafka" }

// Close shuts the client down.
func (p *HistoryPublisher) Close() { p.client.Close() }
