package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports whether Redis can take splitter events. Beyond a
// ping it checks that the events key has not been claimed by another type,
// which would make every XADD fail.
type HealthCheck struct {
	client    goredis.UniversalClient
	eventsKey string
}

func NewHealthCheck(client goredis.UniversalClient, eventsKey string) *HealthCheck {
	return &HealthCheck{client: client, eventsKey: eventsKey}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return err
	}
	return checkStreamKey(ctx, h.client, h.eventsKey)
}

func (h *HealthCheck) Name() string {
	return "redis"
}

// checkStreamKey accepts a missing key or a stream.
func checkStreamKey(ctx context.Context, client goredis.UniversalClient, key string) error {
	kind, err := client.Type(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis type %s: %w", key, err)
	}
	if kind != "none" && kind != "stream" {
		return fmt.Errorf("events key %s holds a %s, want a stream", key, kind)
	}
	return nil
}
