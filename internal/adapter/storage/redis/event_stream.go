package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"did-payment-splitter/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// defaultStreamMaxLen caps the stream so idle consumers cannot grow it
// without bound. Trimming is approximate (MAXLEN ~).
const defaultStreamMaxLen = 100_000

// EventStream implements ports.EventSink by appending events to a Redis
// stream that indexers consume with XREAD.
type EventStream struct {
	client goredis.UniversalClient
	key    string
	maxLen int64
}

// NewEventStream creates a Redis stream sink writing to key.
func NewEventStream(client goredis.UniversalClient, key string) *EventStream {
	return &EventStream{
		client: client,
		key:    key,
		maxLen: defaultStreamMaxLen,
	}
}

// Append writes all events in a single pipeline.
func (s *EventStream) Append(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, e := range events {
		attrs, err := json.Marshal(e.Attributes)
		if err != nil {
			return fmt.Errorf("marshal attributes: %w", err)
		}
		pipe.XAdd(ctx, &goredis.XAddArgs{
			Stream: s.key,
			MaxLen: s.maxLen,
			Approx: true,
			Values: map[string]interface{}{
				"id":         e.ID.String(),
				"kind":       string(e.Kind),
				"actor":      e.Actor.Hex(),
				"subject":    e.Subject.Hex(),
				"attributes": string(attrs),
				"created_at": e.CreatedAt.UnixMilli(),
			},
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis xadd: %w", err)
	}
	return nil
}

// Name returns the sink name.
func (s *EventStream) Name() string {
	return "redis"
}
