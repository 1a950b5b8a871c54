package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"did-payment-splitter/internal/core/domain"
)

// EventRepo implements ports.EventSink on the events table.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append inserts events. Events already stored are skipped.
func (r *EventRepo) Append(ctx context.Context, events []*domain.Event) error {
	query := `INSERT INTO events (id, kind, actor, subject, attributes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	q := conn(ctx, r.pool)
	for _, e := range events {
		attrs, err := json.Marshal(e.Attributes)
		if err != nil {
			return fmt.Errorf("marshal attributes: %w", err)
		}
		_, err = q.Exec(ctx, query,
			e.ID, string(e.Kind), e.Actor.Bytes(), e.Subject.Bytes(), attrs, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}
	return nil
}

// Name returns the sink name.
func (r *EventRepo) Name() string {
	return "postgres"
}
