package commands

import (
	"context"
	"log/slog"
	"time"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/product"
	"wholesale/internal/core/domain/services"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// RecordShipmentCommandHandler ships an open order: the shipped date becomes
// today and every line's quantity leaves both product counters.
//
// The order row is locked first, then its products in ascending reference
// order. Stock may go negative; shipment is never refused for lack of stock.
//
// Example:
//
//	handler := NewRecordShipmentCommandHandler(uowFactory, publisher, NoRetry(), logger)
//	o, err := handler.Handle(ctx, NewRecordShipmentCommand(10248))
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyShipped):
//	    // shipped by someone else
//	case err != nil:
//	    return err
//	}
//	fmt.Println(o.ShippedOn())
type RecordShipmentCommandHandler struct {
	uowFactory StockUoWFactory
	events     eventSink
	retry      RetryPolicy
	allocator  services.StockAllocator
	now        func() time.Time
}

func NewRecordShipmentCommandHandler(
	uowFactory StockUoWFactory,
	publisher ports.OrderEventPublisher,
	retry RetryPolicy,
	logger *slog.Logger,
) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
		events:     newEventSink(publisher, logger.With("handler", "record_shipment")),
		retry:      retry,
		allocator:  services.NewStockAllocator(),
		now:        time.Now,
	}
}

// Handle returns the shipped order.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, cmd RecordShipmentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "RecordShipment")
	span.SetAttributes(attribute.Int("order.number", cmd.OrderNumber()))

	var shipped *order.Order
	err := h.retry.Run(ctx, func() error {
		var attemptErr error
		shipped, attemptErr = h.ship(ctx, cmd)
		return attemptErr
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	h.events.publish(ctx, ports.OrderShipped, shipped)
	return shipped, nil
}

func (h RecordShipmentCommandHandler) ship(ctx context.Context, cmd RecordShipmentCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, err
	}

	// Refuse before locking any product.
	if err = o.Status().EnsureOpen(); err != nil {
		return nil, err
	}

	totals := o.QuantitiesByProduct()
	products := make([]*product.Product, 0, len(totals))
	for _, t := range totals {
		p, getErr := productRepo.GetForUpdate(ctx, t.ProductReference)
		if getErr != nil {
			return nil, getErr
		}
		products = append(products, p)
	}

	if err = h.allocator.Ship(o, products, h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
