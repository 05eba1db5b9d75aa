package commands

import (
	"context"
	"errors"

	"logix/internal/core/domain/model/driver"
	"logix/internal/core/domain/model/order"
	"logix/internal/core/domain/services"
)

// ProcessNewOrderCommandHandler is the automation orchestrator. It drives a
// single order through validation, warehouse routing, driver assignment, and
// workflow initialization, committing every reservation in one transaction.
//
// Behavior at the boundary:
//   - candidate shortages and validation failures are reported in the
//     returned AutomationDecision, not as errors; only infrastructure
//     failures surface as errors
//   - the handler never retries; callers own retry policy
//   - re-invoking is safe: an order that already committed a driver is a
//     no-op, and an order that committed only a warehouse keeps it and
//     retries just the driver leg, so no capacity is reserved twice
type ProcessNewOrderCommandHandler struct {
	uowFactory AutomationUoWFactory
	validator  services.OrderValidator
	estimator  services.FulfillmentEstimator
	router     services.WarehouseRouter
	assigner   services.DriverAssigner
}

// NewProcessNewOrderCommandHandler creates the automation orchestrator.
func NewProcessNewOrderCommandHandler(
	uowFactory AutomationUoWFactory,
	validator services.OrderValidator,
	estimator services.FulfillmentEstimator,
	router services.WarehouseRouter,
	assigner services.DriverAssigner,
) ProcessNewOrderCommandHandler {
	return ProcessNewOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		estimator:  estimator,
		router:     router,
		assigner:   assigner,
	}
}

// Handle runs one automation attempt and reports how far it got.
func (h *ProcessNewOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessNewOrderCommand,
) (AutomationDecision, error) {
	if err := cmd.Validate(); err != nil {
		return AutomationDecision{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutomationDecision{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return AutomationDecision{}, err
	}

	decision := AutomationDecision{OrderID: o.ID(), Stage: StageValidating}

	// A driver committed in a prior attempt means all reservations already
	// happened; running again must not double-increment anything.
	if o.Driver() != nil {
		decision.Outcome = OutcomeFullyAutomated
		decision.Stage = StageDone
		decision.AlreadyProcessed = true
		decision.WarehouseID = o.Warehouse()
		decision.DriverID = o.Driver()
		return decision, nil
	}

	// A warehouse without a driver is a prior partial outcome: its capacity
	// is already reserved, so only the driver leg runs again.
	resumed := o.Warehouse() != nil

	var selection services.WarehouseSelection
	var estimate services.FulfillmentEstimate

	if resumed {
		selection = services.WarehouseSelection{WarehouseID: *o.Warehouse()}
		estimate = services.FulfillmentEstimate{
			Duration:          o.FulfillmentEstimate(),
			RequiresExpedited: o.RequiresExpeditedHandling(),
		}
		decision.FulfillmentEstimate = estimate.Duration
	} else {
		validation, err := h.validator.Validate(o)
		if err != nil {
			return AutomationDecision{}, err
		}
		decision.Warnings = validation.Warnings
		if !validation.IsValid() {
			decision.ValidationErrors = validation.Errors
			return h.failManual(ctx, uow, o, decision, FailureValidationFailed)
		}

		estimate, err = h.estimator.Estimate(o)
		if err != nil {
			return AutomationDecision{}, err
		}
		decision.FulfillmentEstimate = estimate.Duration

		decision.Stage = StageRoutingWarehouse
		warehouses, err := uow.WarehouseRepository().GetAllActive(ctx)
		if err != nil {
			return AutomationDecision{}, err
		}

		selection, err = h.router.SelectWarehouse(o, warehouses)
		if errors.Is(err, services.ErrNoWarehouseAvailable) {
			return h.failManual(ctx, uow, o, decision, FailureNoWarehouseAvailable)
		}
		if err != nil {
			return AutomationDecision{}, err
		}
		decision.WarehouseReason = selection.Reason
	}

	decision.Stage = StageAssigningDriver
	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return AutomationDecision{}, err
	}

	assignment, err := h.assigner.SelectDriver(o, drivers)
	if errors.Is(err, services.ErrNoDriverAvailable) {
		return h.commitPartial(ctx, uow, o, decision, selection, estimate, resumed)
	}
	if err != nil {
		return AutomationDecision{}, err
	}
	decision.DriverReason = assignment.Reason

	// Reserve the driver first: the guarded increment is what resolves a race
	// between two orchestrator runs wanting the same last capacity units.
	err = uow.DriverRepository().ReserveCapacity(ctx, assignment.DriverID, o.Load())
	if errors.Is(err, driver.ErrLoadExceedsCapacity) {
		// Lost the race after selection; a human re-dispatches.
		return h.commitPartial(ctx, uow, o, decision, selection, estimate, resumed)
	}
	if err != nil {
		return AutomationDecision{}, err
	}

	if !resumed {
		if err = o.AssignWarehouse(selection.WarehouseID); err != nil {
			return AutomationDecision{}, err
		}
	}
	if err = o.AssignDriver(assignment.DriverID); err != nil {
		return AutomationDecision{}, err
	}
	if !resumed {
		if err = uow.WarehouseRepository().ReserveCapacity(ctx, selection.WarehouseID, o.Load()); err != nil {
			return AutomationDecision{}, err
		}
	}

	decision.Stage = StageInitializingWorkflow
	h.initializeWorkflow(o, estimate)

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return AutomationDecision{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return AutomationDecision{}, err
	}

	warehouseID := selection.WarehouseID
	driverID := assignment.DriverID
	decision.Outcome = OutcomeFullyAutomated
	decision.Stage = StageDone
	decision.WarehouseID = &warehouseID
	decision.DriverID = &driverID
	return decision, nil
}

// failManual flags the order for a human and records a failed attempt.
// Nothing was reserved at this point, so only the order row changes.
func (h *ProcessNewOrderCommandHandler) failManual(
	ctx context.Context,
	uow AutomationUoW,
	o *order.Order,
	decision AutomationDecision,
	reason string,
) (AutomationDecision, error) {
	o.RequireManualHandling()

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return AutomationDecision{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return AutomationDecision{}, err
	}

	decision.Outcome = OutcomeFailedRequiresManual
	decision.Stage = StageFailed
	decision.FailureReason = reason
	return decision, nil
}

// commitPartial keeps the routed warehouse, reserves its capacity, and hands
// the driver leg to a human. A resumed attempt reserved the warehouse in a
// prior run, so only the order row changes.
func (h *ProcessNewOrderCommandHandler) commitPartial(
	ctx context.Context,
	uow AutomationUoW,
	o *order.Order,
	decision AutomationDecision,
	selection services.WarehouseSelection,
	estimate services.FulfillmentEstimate,
	resumed bool,
) (AutomationDecision, error) {
	if !resumed {
		if err := o.AssignWarehouse(selection.WarehouseID); err != nil {
			return AutomationDecision{}, err
		}
		if err := uow.WarehouseRepository().ReserveCapacity(ctx, selection.WarehouseID, o.Load()); err != nil {
			return AutomationDecision{}, err
		}
	}

	o.RequireManualHandling()
	h.initializeWorkflow(o, estimate)

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return AutomationDecision{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return AutomationDecision{}, err
	}

	warehouseID := selection.WarehouseID
	decision.Outcome = OutcomePartiallyAutomated
	decision.Stage = StageFailed
	decision.FailureReason = FailureNoDriverAvailable
	decision.WarehouseID = &warehouseID
	return decision, nil
}

func (h *ProcessNewOrderCommandHandler) initializeWorkflow(o *order.Order, estimate services.FulfillmentEstimate) {
	o.InitializeWorkflow(estimate.Duration)
	if estimate.RequiresExpedited {
		o.FlagExpeditedHandling()
	}
}
