package jobs

import (
	"context"
	"log/slog"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// sweepBatchSize bounds how many orders one sweep picks up. A busy intake
// never blocks the scheduler; the next sweep takes the rest.
const sweepBatchSize = 20

// AutomationJob periodically sweeps orders still waiting for automation and
// runs the orchestrator on each. Orders the orchestrator hands to manual
// handling leave the sweep set, so a failing order is not retried forever.
type AutomationJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.ProcessNewOrderCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAutomationJob creates a new job that runs the automation orchestrator
// over pending orders every ten seconds.
func NewAutomationJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.ProcessNewOrderCommandHandler,
	logger *slog.Logger,
) *AutomationJob {
	return &AutomationJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "automation_job"),
	}
}

// Start begins the automation sweep.
func (j *AutomationJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Automation job started (running every ten seconds)")
	return nil
}

// Stop stops the automation sweep.
func (j *AutomationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Automation job stopped")
}

func (j *AutomationJob) sweep(ctx context.Context) {
	pending, err := j.pendingOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Automation sweep could not load pending orders", "error", err)
		return
	}

	for _, o := range pending {
		cmd, err := commands.NewProcessNewOrderCommand(o.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Automation sweep skipped order",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		decision, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Automation attempt failed",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Automation attempt finished",
			"order_id", o.ID().String(),
			"outcome", decision.Outcome.String(),
			"stage", decision.Stage.String())
	}
}

// pendingOrders reads the current sweep batch in its own short transaction;
// each order is then processed in the orchestrator's transaction.
func (j *AutomationJob) pendingOrders(ctx context.Context) ([]*order.Order, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllPendingAutomation(ctx, sweepBatchSize)
}
