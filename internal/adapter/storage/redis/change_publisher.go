package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// ChangePublisher fans registry events out over a Redis pub/sub channel so
// other replicas and dashboards can refresh their views.
type ChangePublisher struct {
	client  goredis.UniversalClient
	channel string
}

var _ ports.ChangeNotifier = (*ChangePublisher)(nil)

// NewChangePublisher creates a publisher for channel.
func NewChangePublisher(client goredis.UniversalClient, channel string) *ChangePublisher {
	return &ChangePublisher{client: client, channel: channel}
}

// Notify publishes event as JSON.
func (p *ChangePublisher) Notify(ctx context.Context, event domain.RegistryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal registry event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}
