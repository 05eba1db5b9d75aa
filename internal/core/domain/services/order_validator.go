package services

import (
	"fmt"
	"time"

	"logix/internal/core/domain/model/order"
)

// ValidationResult carries the outcome of industry validation. Errors block
// automation; warnings are advisory and never stop an order.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether the order passed validation.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// OrderValidator is a domain service that checks industry-specific payload
// requirements before any resource is reserved for an order.
//
// Business rules:
//   - every industry has its own required payload fields
//   - domain constraints (temperature enums, hazmat compliance, production
//     schedules) produce errors, advisory gaps produce warnings
//   - validation is pure: it never mutates the order and never touches
//     external state
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate runs the industry validator matching the order's category.
func (v OrderValidator) Validate(o *order.Order) (ValidationResult, error) {
	if err := o.Validate(); err != nil {
		return ValidationResult{}, err
	}

	var result ValidationResult
	switch p := o.Payload().(type) {
	case order.EcommercePayload:
		v.validateEcommerce(p, &result)
	case order.RetailPayload:
		v.validateRetail(p, &result)
	case order.FoodDeliveryPayload:
		v.validateFoodDelivery(p, &result)
	case order.ManufacturingPayload:
		v.validateManufacturing(p, &result)
	case order.ThirdPartyPayload:
		v.validateThirdParty(p, &result)
	default:
		result.addError("order has no industry payload")
	}

	return result, nil
}

func (v OrderValidator) validateEcommerce(p order.EcommercePayload, r *ValidationResult) {
	if p.PlatformOrderID == "" {
		r.addError("platform_order_id is required for e-commerce orders")
	}
	if p.PlatformName == "" {
		r.addError("platform_name is required for e-commerce orders")
	}
	if p.CustomerEmail == "" {
		r.addError("customer_email is required for e-commerce orders")
	}

	if p.CustomerPhone == "" {
		r.addWarning("customer_phone is recommended for delivery coordination")
	}
	if p.CustomerSegment == "" {
		r.addWarning("customer_segment helps with order prioritization")
	}

	if p.IsSubscription && p.SubscriptionID == "" {
		r.addError("subscription_id required for subscription orders")
	}
}

func (v OrderValidator) validateRetail(p order.RetailPayload, r *ValidationResult) {
	if p.PONumber == "" {
		r.addError("po_number is required for retail orders")
	}
	if p.VendorID == "" {
		r.addError("vendor_id is required for retail orders")
	}
	if p.VendorName == "" {
		r.addError("vendor_name is required for retail orders")
	}
	if p.PaymentTerms == "" {
		r.addError("payment_terms is required for retail orders")
	}
	if p.DeliveryTerms == "" {
		r.addError("delivery_terms is required for retail orders")
	}

	if p.Hazmat && len(p.ComplianceCertifications) == 0 {
		r.addError("hazmat orders require at least one compliance certification")
	}
	if p.Hazmat && p.HazmatClassification == "" {
		r.addWarning("hazmat flag set without a hazmat classification")
	}
	if len(p.QualityStandards) > 0 && !p.InspectionRequired {
		r.addWarning("quality standards specified but inspection not required")
	}
}

func (v OrderValidator) validateFoodDelivery(p order.FoodDeliveryPayload, r *ValidationResult) {
	if p.RestaurantID == "" {
		r.addError("restaurant_id is required for food delivery orders")
	}
	if p.RestaurantName == "" {
		r.addError("restaurant_name is required for food delivery orders")
	}
	if p.CustomerPhone == "" {
		r.addError("customer_phone is required for food delivery orders")
	}
	if p.PrepTimeMinutes <= 0 {
		r.addError("preparation_time_minutes is required for food delivery orders")
	}

	if err := p.TemperatureRequirement.Validate(); err != nil {
		r.addError("temperature_requirement %q is not a recognized value", string(p.TemperatureRequirement))
	} else if p.TemperatureRequirement == "" {
		r.addWarning("temperature requirements not specified")
	}

	if !p.DeliveryWindow.IsZero() {
		switch d := p.DeliveryWindow.Duration(); {
		case d < 15*time.Minute:
			r.addWarning("delivery window is very tight (< 15 minutes)")
		case d > time.Hour:
			r.addWarning("delivery window is quite wide (> 1 hour)")
		}
	}
}

func (v OrderValidator) validateManufacturing(p order.ManufacturingPayload, r *ValidationResult) {
	if p.ProductionOrderID == "" {
		r.addError("production_order_id is required for manufacturing orders")
	}

	if !p.ProductionStart.IsZero() && !p.ProductionEnd.IsZero() &&
		p.ProductionEnd.Before(p.ProductionStart) {
		r.addError("production end date cannot be before start date")
	}

	if len(p.QualityControlPoints) == 0 {
		r.addWarning("no quality control points specified")
	}
	if p.TraceabilityRequired && p.BatchNumber == "" {
		r.addWarning("traceability required but no batch number specified")
	}
}

func (v OrderValidator) validateThirdParty(p order.ThirdPartyPayload, r *ValidationResult) {
	if p.ClientID == "" {
		r.addError("client_id is required for 3PL orders")
	}
	if p.ClientName == "" {
		r.addError("client_name is required for 3PL orders")
	}
	if p.ServiceType == "" {
		r.addError("service_type is required for 3PL orders")
	}
	if p.FulfillmentCenter == "" {
		r.addError("fulfillment_center is required for 3PL orders")
	}
	if p.BillingModel == "" {
		r.addError("billing_model is required for 3PL orders")
	}

	if p.SLADeliveryMinutes > 0 && p.SLADeliveryMinutes < 60 {
		r.addWarning("SLA delivery time less than 1 hour may be difficult to meet")
	}
}
