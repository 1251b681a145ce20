package jobs

import (
	"context"

	"github.com/riosgabriel/taq-u-app/internal/core/application/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// pendingOrdersSchedule runs the report once a minute. The report is
// informational; a tighter schedule would only repeat the same numbers.
const pendingOrdersSchedule = "0 * * * * *"

// PendingOrdersJob periodically reports how many orders are still pending
// and the oldest pickup date among them.
type PendingOrdersJob struct {
	handler queries.PendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewPendingOrdersJob creates the pending-orders reporting job.
func NewPendingOrdersJob(handler queries.PendingOrdersQueryHandler, logger *zap.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "pending_orders_job")),
	}
}

// Start begins the pending-orders report on its schedule.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc(pendingOrdersSchedule, func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewPendingOrdersQuery())
		if err != nil {
			j.logger.Error("pending orders report failed", zap.Error(err))
			return
		}

		if len(orders) == 0 {
			j.logger.Info("no pending orders")
			return
		}

		j.logger.Info("pending orders report",
			zap.Int("count", len(orders)),
			zap.Time("oldest_pickup", orders[0].PickupDate),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("pending orders job started")
	return nil
}

// Stop stops the pending-orders job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.Info("pending orders job stopped")
}
