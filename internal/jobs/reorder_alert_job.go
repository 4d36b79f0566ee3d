package jobs

import (
	"context"
	"log/slog"

	"wholesale/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReorderQuery is satisfied by queries.GetProductsToReorderQueryHandler.
type ReorderQuery interface {
	Handle(ctx context.Context, query queries.GetProductsToReorderQuery) ([]queries.GetProductsToReorderQueryResponse, error)
}

// ReorderAlertJob periodically logs the products whose free units have
// dropped to their reorder level. It only reads.
type ReorderAlertJob struct {
	query    ReorderQuery
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReorderAlertJob creates the job. schedule is a six-field cron expression
// (seconds first), for example "0 */15 * * * *".
func NewReorderAlertJob(query ReorderQuery, schedule string, logger *slog.Logger) *ReorderAlertJob {
	return &ReorderAlertJob{
		query:    query,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reorder_alert_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *ReorderAlertJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reorder alert job started", "schedule", j.schedule)
	return nil
}

// Run performs one check and returns how many products need reordering.
func (j *ReorderAlertJob) Run(ctx context.Context) int {
	products, err := j.query.Handle(ctx, queries.NewGetProductsToReorderQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Reorder alert job failed", "error", err)
		return 0
	}

	for _, p := range products {
		j.logger.WarnContext(ctx, "Product needs reorder",
			"product_reference", p.Reference,
			"product_name", p.Name,
			"units_in_stock", p.UnitsInStock,
			"units_on_order", p.UnitsOnOrder,
			"reorder_level", p.ReorderLevel,
		)
	}

	return len(products)
}

// Stop waits for a running check to finish.
func (j *ReorderAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reorder alert job stopped")
}
