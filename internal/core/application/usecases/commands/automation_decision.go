package commands

import (
	"time"

	"logix/internal/core/domain/model/kernel"
)

// AutomationStage is a station of the orchestrator's state machine for one
// automation attempt.
type AutomationStage int

const (
	StageValidating AutomationStage = iota
	StageRoutingWarehouse
	StageAssigningDriver
	StageInitializingWorkflow
	StageDone
	StageFailed
)

func getAutomationStageStrings() map[AutomationStage]string {
	return map[AutomationStage]string{
		StageValidating:           "validating",
		StageRoutingWarehouse:     "routing_warehouse",
		StageAssigningDriver:      "assigning_driver",
		StageInitializingWorkflow: "initializing_workflow",
		StageDone:                 "done",
		StageFailed:               "failed",
	}
}

// String returns the wire representation of the stage.
func (s AutomationStage) String() string {
	if str, ok := getAutomationStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AutomationOutcome classifies how far automation got with an order.
type AutomationOutcome int

const (
	// OutcomeFullyAutomated means warehouse and driver were both committed
	// and the workflow initialized.
	OutcomeFullyAutomated AutomationOutcome = iota

	// OutcomePartiallyAutomated means a warehouse was committed but no driver
	// qualified; a human finishes the assignment.
	OutcomePartiallyAutomated

	// OutcomeFailedRequiresManual means automation could not commit anything.
	OutcomeFailedRequiresManual
)

func getAutomationOutcomeStrings() map[AutomationOutcome]string {
	return map[AutomationOutcome]string{
		OutcomeFullyAutomated:       "fully_automated",
		OutcomePartiallyAutomated:   "partially_automated",
		OutcomeFailedRequiresManual: "failed_requires_manual",
	}
}

// String returns the wire representation of the outcome.
func (o AutomationOutcome) String() string {
	if str, ok := getAutomationOutcomeStrings()[o]; ok {
		return str
	}
	return "unknown"
}

// Typed failure reasons surfaced in AutomationDecision.FailureReason.
const (
	FailureValidationFailed     = "validation_failed"
	FailureNoWarehouseAvailable = "no_warehouse_available"
	FailureNoDriverAvailable    = "no_driver_available"
)

// AutomationDecision is the orchestrator's report for one automation attempt.
// Candidate shortages are reported here, never as Go errors: the attempt
// completing with a manual-handling outcome is a normal result.
type AutomationDecision struct {
	OrderID kernel.UUID
	Outcome AutomationOutcome

	// Stage is the last stage reached; StageDone on success, StageFailed when
	// the attempt short-circuited.
	Stage         AutomationStage
	FailureReason string

	WarehouseID     *kernel.UUID
	WarehouseReason string
	DriverID        *kernel.UUID
	DriverReason    string

	FulfillmentEstimate time.Duration
	ValidationErrors    []string
	Warnings            []string

	// AlreadyProcessed is set when a prior attempt had committed a driver and
	// this invocation changed nothing.
	AlreadyProcessed bool
}
