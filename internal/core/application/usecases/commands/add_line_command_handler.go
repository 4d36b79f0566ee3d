package commands

import (
	"context"
	"errors"
	"log/slog"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/services"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// AddLineCommandHandler adds a line to an open order and puts its quantity on
// order for the product, in one transaction.
//
// Failures are reported in this order, first one wins:
//  1. product not found
//  2. product unavailable
//  3. insufficient stock
//  4. order not found
//  5. order already shipped
//
// Rows are locked order first, then product, the same order RecordShipment
// uses, so the two commands never deadlock each other.
type AddLineCommandHandler struct {
	uowFactory StockUoWFactory
	events     eventSink
	retry      RetryPolicy
	allocator  services.StockAllocator
}

func NewAddLineCommandHandler(
	uowFactory StockUoWFactory,
	publisher ports.OrderEventPublisher,
	retry RetryPolicy,
	logger *slog.Logger,
) AddLineCommandHandler {
	return AddLineCommandHandler{
		uowFactory: uowFactory,
		events:     newEventSink(publisher, logger.With("handler", "add_line")),
		retry:      retry,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle returns the persisted line with its generated id.
func (h AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) (*order.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "AddLine")
	span.SetAttributes(
		attribute.Int("order.number", cmd.OrderNumber()),
		attribute.Int("product.reference", cmd.ProductReference()),
		attribute.Int("line.quantity", cmd.Quantity().Int()),
	)

	var (
		o    *order.Order
		line *order.Line
	)
	err := h.retry.Run(ctx, func() error {
		var attemptErr error
		o, line, attemptErr = h.addLine(ctx, cmd)
		return attemptErr
	})
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	h.events.publish(ctx, ports.OrderLineAdded, o)
	return line, nil
}

func (h AddLineCommandHandler) addLine(ctx context.Context, cmd AddLineCommand) (*order.Order, *order.Line, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, orderErr := orderRepo.GetForUpdate(ctx, cmd.OrderNumber())
	if orderErr != nil && !errors.Is(orderErr, errs.ErrObjectNotFound) {
		return nil, nil, orderErr
	}

	p, err := productRepo.GetForUpdate(ctx, cmd.ProductReference())
	if err != nil {
		return nil, nil, err
	}

	if orderErr != nil {
		if err = p.EnsureCanReserve(cmd.Quantity()); err != nil {
			return nil, nil, err
		}
		return nil, nil, orderErr
	}

	line, err := h.allocator.Reserve(o, p, cmd.Quantity())
	if err != nil {
		return nil, nil, err
	}

	if err = orderRepo.AddLine(ctx, line); err != nil {
		return nil, nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return o, line, nil
}
