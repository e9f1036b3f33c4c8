package service

import (
	"context"
	"fmt"
	"time"

	"country-limits/internal/core/domain"
	"country-limits/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const notifyTimeout = 5 * time.Second

// NamedNotifier pairs a sink with the name used in error messages.
type NamedNotifier struct {
	Name     string
	Notifier ports.ChangeNotifier
}

// Broadcaster delivers each event to every configured sink concurrently.
type Broadcaster struct {
	sinks []NamedNotifier
}

var _ ports.ChangeNotifier = (*Broadcaster)(nil)

// NewBroadcaster creates a Broadcaster. Nil sinks are skipped.
func NewBroadcaster(sinks ...NamedNotifier) *Broadcaster {
	b := &Broadcaster{}
	for _, s := range sinks {
		if s.Notifier != nil {
			b.sinks = append(b.sinks, s)
		}
	}
	return b
}

// Len returns the number of sinks.
func (b *Broadcaster) Len() int { return len(b.sinks) }

// Notify waits for every sink and returns the first failure. A failing sink
// does not cancel delivery to the others.
func (b *Broadcaster) Notify(ctx context.Context, event domain.RegistryEvent) error {
	if len(b.sinks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	var g errgroup.Group
	for _, s := range b.sinks {
		g.Go(func() error {
			if err := s.Notifier.Notify(ctx, event); err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
