package service

import (
	"context"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/metrics"

	"github.com/rs/zerolog"
)

type eventService struct {
	sinks   []ports.EventSink
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewEventService creates the event publisher. With no sinks, events are
// only written to the logger.
func NewEventService(log zerolog.Logger, m *metrics.Metrics, sinks ...ports.EventSink) ports.EventPublisher {
	return &eventService{sinks: sinks, metrics: m, log: log}
}

// Publish logs every event and appends the batch to each sink. A failing
// sink is logged and skipped.
func (s *eventService) Publish(ctx context.Context, events ...*domain.Event) {
	if len(events) == 0 {
		return
	}

	for _, e := range events {
		fields := make(map[string]interface{}, len(e.Attributes))
		for k, v := range e.Attributes {
			fields[k] = v
		}
		s.log.Info().
			Str("event_id", e.ID.String()).
			Str("kind", string(e.Kind)).
			Str("actor", e.Actor.Hex()).
			Str("subject", e.Subject.Hex()).
			Fields(fields).
			Msg("event")
	}

	for _, sink := range s.sinks {
		if err := sink.Append(ctx, events); err != nil {
			s.metrics.IncrementSinkFailure(sink.Name())
			s.log.Warn().
				Err(err).
				Str("sink", sink.Name()).
				Int("events", len(events)).
				Msg("failed to append events")
		}
	}
}
