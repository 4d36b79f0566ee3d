package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/ports"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// OrderChangedEvent is the JSON payload written for every committed change.
type OrderChangedEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderNumber int       `json:"order_number"`
	ClientCode  string    `json:"client_code"`
	Status      string    `json:"status"`
	Discount    string    `json:"discount"`
	LineCount   int       `json:"line_count"`
	ShippedOn   *string   `json:"shipped_on,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderChangedPublisher writes OrderChangedEvent messages keyed by order
// number, so the changes of one order stay in one partition and in order.
type OrderChangedPublisher struct {
	writer Writer
	now    func() time.Time
}

func NewOrderChangedPublisher(writer Writer) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: writer, now: time.Now}
}

func (p *OrderChangedPublisher) Publish(ctx context.Context, change ports.OrderChange, o *order.Order) error {
	event := newOrderChangedEvent(change, o, p.now())

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", change, err)
	}

	msg := kafkago.Message{
		Key:   []byte(strconv.Itoa(o.Number())),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(change)},
		},
	}
	if err = p.writer.WriteMessage(ctx, msg); err != nil {
		return fmt.Errorf("write %s event for order %d: %w", change, o.Number(), err)
	}

	return nil
}

// Close flushes pending messages.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

func newOrderChangedEvent(change ports.OrderChange, o *order.Order, now time.Time) OrderChangedEvent {
	event := OrderChangedEvent{
		EventID:     uuid.NewString(),
		Type:        string(change),
		OrderNumber: o.Number(),
		ClientCode:  o.ClientCode(),
		Status:      o.Status().String(),
		Discount:    o.Discount().String(),
		LineCount:   len(o.Lines()),
		OccurredAt:  now.UTC(),
	}

	if shippedOn := o.ShippedOn(); shippedOn != nil {
		day := shippedOn.Format(time.DateOnly)
		event.ShippedOn = &day
	}

	return event
}

// NoopPublisher drops every event. It is wired when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ports.OrderChange, *order.Order) error {
	return nil
}
