package commands

import (
	"context"
	"log/slog"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/services"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// CreateOrderCommandHandler opens orders. A client who ordered more than
// services.LoyaltyThreshold articles in total gets the loyalty discount.
// No stock is touched.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, NoRetry(), logger)
//	cmd, _ := NewCreateOrderCommand("ALFKI")
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %d opened with discount %s\n", o.Number(), o.Discount())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventSink
	retry      RetryPolicy
	policy     services.DiscountPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	retry RetryPolicy,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newEventSink(publisher, logger.With("handler", "create_order")),
		retry:      retry,
		policy:     services.NewDiscountPolicy(),
	}
}

// Handle opens the order and returns it with its generated number.
// Returns errs.ErrObjectNotFound for an unknown client and errs.ErrConflict
// when the transaction could not complete after the configured retries.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "CreateOrder")
	span.SetAttributes(attribute.String("client.code", cmd.ClientCode()))

	var created *order.Order
	err := h.retry.Run(ctx, func() error {
		var attemptErr error
		created, attemptErr = h.create(ctx, cmd)
		return attemptErr
	})
	if err == nil {
		span.SetAttributes(attribute.Int("order.number", created.Number()))
	}
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	h.events.publish(ctx, ports.OrderCreated, created)
	return created, nil
}

func (h CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	orderRepo := uow.OrderRepository()

	c, err := clientRepo.Get(ctx, cmd.ClientCode())
	if err != nil {
		return nil, err
	}

	articles, err := clientRepo.SumOrderedQuantities(ctx, c.Code())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(c, h.policy.RateFor(articles))
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
