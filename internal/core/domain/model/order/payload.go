package order

import (
	"fmt"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/pkg/errs"
)

// Payload is the industry-specific portion of an order. Exactly one payload
// variant exists per order and its Category must equal the order's industry
// category; the Order constructor enforces the tag. Modeling the conditional
// data as a sealed interface instead of five nullable fields makes the
// "exactly one populated" invariant structural.
//
// Payload values are plain data: business rules over them live in the
// industry validators (services package), not here.
type Payload interface {
	// Category returns the industry vertical this payload belongs to.
	Category() IndustryCategory

	// sealed prevents payload variants from being declared outside this package.
	sealed()
}

// TemperatureRequirement constrains how food must be transported.
type TemperatureRequirement string

// Valid temperature requirements for food delivery payloads.
const (
	TemperatureAmbient TemperatureRequirement = "ambient"
	TemperatureHot     TemperatureRequirement = "hot"
	TemperatureCold    TemperatureRequirement = "cold"
	TemperatureFrozen  TemperatureRequirement = "frozen"
)

// Validate checks that the requirement is one of the fixed set.
// The empty value is valid and means "no requirement".
func (r TemperatureRequirement) Validate() error {
	switch r {
	case "", TemperatureAmbient, TemperatureHot, TemperatureCold, TemperatureFrozen:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"temperatureRequirement",
		fmt.Errorf("%q is not a valid temperature requirement", string(r)),
	)
}

// EcommercePayload carries platform integration data for web-shop orders.
type EcommercePayload struct {
	PlatformOrderID string
	PlatformName    string
	CustomerEmail   string
	CustomerPhone   string
	// CustomerSegment drives priority ("vip" and "loyal" are promoted).
	CustomerSegment string
	IsSubscription  bool
	SubscriptionID  string
}

func (EcommercePayload) Category() IndustryCategory { return IndustryEcommerce }
func (EcommercePayload) sealed()                    {}

// RetailPayload carries B2B purchase order data for retail distribution.
type RetailPayload struct {
	PONumber     string
	VendorID     string
	VendorName   string
	PaymentTerms string
	// DeliveryTerms such as "FOB Destination"; the words URGENT or EXPEDITED
	// inside it raise the order priority.
	DeliveryTerms string

	ComplianceCertifications []string
	Hazmat                   bool
	HazmatClassification     string

	InspectionRequired  bool
	QualityStandards    []string
	AppointmentRequired bool
	AppointmentWindow   kernel.TimeWindow
}

func (RetailPayload) Category() IndustryCategory { return IndustryRetail }
func (RetailPayload) sealed()                    {}

// FoodDeliveryPayload carries restaurant pickup and food safety data.
type FoodDeliveryPayload struct {
	RestaurantID   string
	RestaurantName string
	CustomerPhone  string

	PrepTimeMinutes int
	// TravelEstimateMinutes is the platform-supplied courier travel estimate.
	// Zero means "not supplied"; the estimator substitutes its default.
	TravelEstimateMinutes int

	TemperatureRequirement TemperatureRequirement
	AllergenInfo           []string
	ContactlessDelivery    bool
	DeliveryWindow         kernel.TimeWindow
}

func (FoodDeliveryPayload) Category() IndustryCategory { return IndustryFoodDelivery }
func (FoodDeliveryPayload) sealed()                    {}

// ManufacturingPayload carries production scheduling and QC data.
type ManufacturingPayload struct {
	ProductionOrderID string
	ProductionStart   time.Time
	ProductionEnd     time.Time
	ProductionLine    string
	BatchNumber       string

	QualityControlPoints []string
	TraceabilityRequired bool
}

func (ManufacturingPayload) Category() IndustryCategory { return IndustryManufacturing }
func (ManufacturingPayload) sealed()                    {}

// ThirdPartyPayload carries client contract data for 3PL orders.
type ThirdPartyPayload struct {
	ClientID     string
	ClientName   string
	ServiceType  string // fulfillment, storage, cross_dock, returns
	ServiceLevel string // standard, expedited, white_glove
	BillingModel string // per_order, per_item, monthly, storage_based

	// FulfillmentCenter is the client-designated warehouse id, if contracted.
	FulfillmentCenter string

	// SLADeliveryMinutes is the contractual completion target; zero means no SLA.
	SLADeliveryMinutes int

	SpecialHandlingRequired bool
}

func (ThirdPartyPayload) Category() IndustryCategory { return IndustryThirdPartyLogistics }
func (ThirdPartyPayload) sealed()                    {}
