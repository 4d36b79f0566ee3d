package commands

import (
	"context"
	"log/slog"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/ports"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("wholesale/commands")

// eventSink publishes committed changes. Publication failures are logged and
// never returned: the change is already durable.
type eventSink struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newEventSink(publisher ports.OrderEventPublisher, logger *slog.Logger) eventSink {
	return eventSink{publisher: publisher, logger: logger}
}

func (s eventSink) publish(ctx context.Context, change ports.OrderChange, o *order.Order) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, change, o); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order change",
			"change", string(change),
			"order_number", o.Number(),
			"error", err,
		)
		return
	}

	s.logger.DebugContext(ctx, "order change published",
		"change", string(change),
		"order_number", o.Number(),
	)
}
