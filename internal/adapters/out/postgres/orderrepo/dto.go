// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. The
// industry payload is stored as a jsonb envelope carrying its category tag so
// the concrete payload type can be restored on read.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and the automation flags so the sweep job and the manual
// handling queue stay cheap.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType int       `gorm:"index"`
	Source    int
	Status    int `gorm:"index"`
	Priority  int

	Items []byte `gorm:"type:jsonb"`

	DeliveryAddress string
	Delivery        GeoPointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	WindowStart     *time.Time
	WindowEnd       *time.Time

	Payload []byte `gorm:"type:jsonb"`

	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`

	FulfillmentEstimateSeconds int64
	RequiresExpeditedHandling  bool
	RequiresManualHandling     bool `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded delivery coordinates within the order table.
type GeoPointDTO struct {
	Lat float64
	Lon float64
}

type itemDTO struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// payloadEnvelope wraps the serialized payload with its industry category so
// toDomain can pick the concrete type back.
type payloadEnvelope struct {
	Category string          `json:"category"`
	Data     json.RawMessage `json:"data"`
}

type ecommercePayloadDTO struct {
	PlatformOrderID string `json:"platform_order_id"`
	PlatformName    string `json:"platform_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerSegment string `json:"customer_segment"`
	IsSubscription  bool   `json:"is_subscription"`
	SubscriptionID  string `json:"subscription_id"`
}

type retailPayloadDTO struct {
	PONumber      string `json:"po_number"`
	VendorID      string `json:"vendor_id"`
	VendorName    string `json:"vendor_name"`
	PaymentTerms  string `json:"payment_terms"`
	DeliveryTerms string `json:"delivery_terms"`

	ComplianceCertifications []string `json:"compliance_certifications"`
	Hazmat                   bool     `json:"hazmat"`
	HazmatClassification     string   `json:"hazmat_classification"`

	InspectionRequired     bool       `json:"inspection_required"`
	QualityStandards       []string   `json:"quality_standards"`
	AppointmentRequired    bool       `json:"appointment_required"`
	AppointmentWindowStart *time.Time `json:"appointment_window_start"`
	AppointmentWindowEnd   *time.Time `json:"appointment_window_end"`
}

type foodDeliveryPayloadDTO struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	CustomerPhone  string `json:"customer_phone"`

	PrepTimeMinutes       int `json:"prep_time_minutes"`
	TravelEstimateMinutes int `json:"travel_estimate_minutes"`

	TemperatureRequirement string     `json:"temperature_requirement"`
	AllergenInfo           []string   `json:"allergen_info"`
	ContactlessDelivery    bool       `json:"contactless_delivery"`
	DeliveryWindowStart    *time.Time `json:"delivery_window_start"`
	DeliveryWindowEnd      *time.Time `json:"delivery_window_end"`
}

type manufacturingPayloadDTO struct {
	ProductionOrderID string    `json:"production_order_id"`
	ProductionStart   time.Time `json:"production_start"`
	ProductionEnd     time.Time `json:"production_end"`
	ProductionLine    string    `json:"production_line"`
	BatchNumber       string    `json:"batch_number"`

	QualityControlPoints []string `json:"quality_control_points"`
	TraceabilityRequired bool     `json:"traceability_required"`
}

type thirdPartyPayloadDTO struct {
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	ServiceType  string `json:"service_type"`
	ServiceLevel string `json:"service_level"`
	BillingModel string `json:"billing_model"`

	FulfillmentCenter       string `json:"fulfillment_center"`
	SLADeliveryMinutes      int    `json:"sla_delivery_minutes"`
	SpecialHandlingRequired bool   `json:"special_handling_required"`
}

func windowToColumns(w kernel.TimeWindow) (*time.Time, *time.Time) {
	if w.IsZero() {
		return nil, nil
	}
	start, end := w.Start(), w.End()
	return &start, &end
}

func windowFromColumns(start, end *time.Time) (kernel.TimeWindow, error) {
	if start == nil || end == nil {
		return kernel.TimeWindow{}, nil
	}
	return kernel.NewTimeWindow(*start, *end)
}

func marshalItems(items []order.Item) ([]byte, error) {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemDTO{SKU: item.SKU, Quantity: item.Quantity})
	}
	return json.Marshal(dtos)
}

func unmarshalItems(raw []byte) ([]order.Item, error) {
	var dtos []itemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, order.Item{SKU: dto.SKU, Quantity: dto.Quantity})
	}
	return items, nil
}

func marshalPayload(p order.Payload) ([]byte, error) {
	var data any

	switch payload := p.(type) {
	case order.EcommercePayload:
		data = ecommercePayloadDTO{
			PlatformOrderID: payload.PlatformOrderID,
			PlatformName:    payload.PlatformName,
			CustomerEmail:   payload.CustomerEmail,
			CustomerPhone:   payload.CustomerPhone,
			CustomerSegment: payload.CustomerSegment,
			IsSubscription:  payload.IsSubscription,
			SubscriptionID:  payload.SubscriptionID,
		}

	case order.RetailPayload:
		start, end := windowToColumns(payload.AppointmentWindow)
		data = retailPayloadDTO{
			PONumber:                 payload.PONumber,
			VendorID:                 payload.VendorID,
			VendorName:               payload.VendorName,
			PaymentTerms:             payload.PaymentTerms,
			DeliveryTerms:            payload.DeliveryTerms,
			ComplianceCertifications: payload.ComplianceCertifications,
			Hazmat:                   payload.Hazmat,
			HazmatClassification:     payload.HazmatClassification,
			InspectionRequired:       payload.InspectionRequired,
			QualityStandards:         payload.QualityStandards,
			AppointmentRequired:      payload.AppointmentRequired,
			AppointmentWindowStart:   start,
			AppointmentWindowEnd:     end,
		}

	case order.FoodDeliveryPayload:
		start, end := windowToColumns(payload.DeliveryWindow)
		data = foodDeliveryPayloadDTO{
			RestaurantID:           payload.RestaurantID,
			RestaurantName:         payload.RestaurantName,
			CustomerPhone:          payload.CustomerPhone,
			PrepTimeMinutes:        payload.PrepTimeMinutes,
			TravelEstimateMinutes:  payload.TravelEstimateMinutes,
			TemperatureRequirement: string(payload.TemperatureRequirement),
			AllergenInfo:           payload.AllergenInfo,
			ContactlessDelivery:    payload.ContactlessDelivery,
			DeliveryWindowStart:    start,
			DeliveryWindowEnd:      end,
		}

	case order.ManufacturingPayload:
		data = manufacturingPayloadDTO{
			ProductionOrderID:    payload.ProductionOrderID,
			ProductionStart:      payload.ProductionStart,
			ProductionEnd:        payload.ProductionEnd,
			ProductionLine:       payload.ProductionLine,
			BatchNumber:          payload.BatchNumber,
			QualityControlPoints: payload.QualityControlPoints,
			TraceabilityRequired: payload.TraceabilityRequired,
		}

	case order.ThirdPartyPayload:
		data = thirdPartyPayloadDTO{
			ClientID:                payload.ClientID,
			ClientName:              payload.ClientName,
			ServiceType:             payload.ServiceType,
			ServiceLevel:            payload.ServiceLevel,
			BillingModel:            payload.BillingModel,
			FulfillmentCenter:       payload.FulfillmentCenter,
			SLADeliveryMinutes:      payload.SLADeliveryMinutes,
			SpecialHandlingRequired: payload.SpecialHandlingRequired,
		}

	default:
		return nil, fmt.Errorf("unsupported payload type %T", p)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(payloadEnvelope{
		Category: p.Category().String(),
		Data:     raw,
	})
}

func unmarshalPayload(raw []byte) (order.Payload, error) {
	var envelope payloadEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	category, err := order.IndustryCategoryFromString(envelope.Category)
	if err != nil {
		return nil, err
	}

	switch category {
	case order.IndustryEcommerce:
		var dto ecommercePayloadDTO
		if err = json.Unmarshal(envelope.Data, &dto); err != nil {
			return nil, err
		}
		return order.EcommercePayload{
			PlatformOrderID: dto.PlatformOrderID,
			PlatformName:    dto.PlatformName,
			CustomerEmail:   dto.CustomerEmail,
			CustomerPhone:   dto.CustomerPhone,
			CustomerSegment: dto.CustomerSegment,
			IsSubscription:  dto.IsSubscription,
			SubscriptionID:  dto.SubscriptionID,
		}, nil

	case order.IndustryRetail:
		var dto retailPayloadDTO
		if err = json.Unmarshal(envelope.Data, &dto); err != nil {
			return nil, err
		}
		window, wErr := windowFromColumns(dto.AppointmentWindowStart, dto.AppointmentWindowEnd)
		if wErr != nil {
			return nil, wErr
		}
		return order.RetailPayload{
			PONumber:                 dto.PONumber,
			VendorID:                 dto.VendorID,
			VendorName:               dto.VendorName,
			PaymentTerms:             dto.PaymentTerms,
			DeliveryTerms:            dto.DeliveryTerms,
			ComplianceCertifications: dto.ComplianceCertifications,
			Hazmat:                   dto.Hazmat,
			HazmatClassification:     dto.HazmatClassification,
			InspectionRequired:       dto.InspectionRequired,
			QualityStandards:         dto.QualityStandards,
			AppointmentRequired:      dto.AppointmentRequired,
			AppointmentWindow:        window,
		}, nil

	case order.IndustryFoodDelivery:
		var dto foodDeliveryPayloadDTO
		if err = json.Unmarshal(envelope.Data, &dto); err != nil {
			return nil, err
		}
		window, wErr := windowFromColumns(dto.DeliveryWindowStart, dto.DeliveryWindowEnd)
		if wErr != nil {
			return nil, wErr
		}
		return order.FoodDeliveryPayload{
			RestaurantID:           dto.RestaurantID,
			RestaurantName:         dto.RestaurantName,
			CustomerPhone:          dto.CustomerPhone,
			PrepTimeMinutes:        dto.PrepTimeMinutes,
			TravelEstimateMinutes:  dto.TravelEstimateMinutes,
			TemperatureRequirement: order.TemperatureRequirement(dto.TemperatureRequirement),
			AllergenInfo:           dto.AllergenInfo,
			ContactlessDelivery:    dto.ContactlessDelivery,
			DeliveryWindow:         window,
		}, nil

	case order.IndustryManufacturing:
		var dto manufacturingPayloadDTO
		if err = json.Unmarshal(envelope.Data, &dto); err != nil {
			return nil, err
		}
		return order.ManufacturingPayload{
			ProductionOrderID:    dto.ProductionOrderID,
			ProductionStart:      dto.ProductionStart,
			ProductionEnd:        dto.ProductionEnd,
			ProductionLine:       dto.ProductionLine,
			BatchNumber:          dto.BatchNumber,
			QualityControlPoints: dto.QualityControlPoints,
			TraceabilityRequired: dto.TraceabilityRequired,
		}, nil

	case order.IndustryThirdPartyLogistics:
		var dto thirdPartyPayloadDTO
		if err = json.Unmarshal(envelope.Data, &dto); err != nil {
			return nil, err
		}
		return order.ThirdPartyPayload{
			ClientID:                dto.ClientID,
			ClientName:              dto.ClientName,
			ServiceType:             dto.ServiceType,
			ServiceLevel:            dto.ServiceLevel,
			BillingModel:            dto.BillingModel,
			FulfillmentCenter:       dto.FulfillmentCenter,
			SLADeliveryMinutes:      dto.SLADeliveryMinutes,
			SpecialHandlingRequired: dto.SpecialHandlingRequired,
		}, nil
	}

	return nil, fmt.Errorf("unsupported payload category %q", envelope.Category)
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := marshalItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	payload, err := marshalPayload(aggregate.Payload())
	if err != nil {
		return OrderDTO{}, err
	}

	var warehouseID, driverID *uuid.UUID
	if id := aggregate.Warehouse(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	windowStart, windowEnd := windowToColumns(aggregate.DeliveryWindow())

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderType:       int(aggregate.Type()),
		Source:          int(aggregate.Source()),
		Status:          int(aggregate.Status()),
		Priority:        int(aggregate.Priority()),
		Items:           items,
		DeliveryAddress: aggregate.DeliveryAddress(),
		Delivery: GeoPointDTO{
			Lat: aggregate.DeliveryLocation().Lat(),
			Lon: aggregate.DeliveryLocation().Lon(),
		},
		WindowStart:                windowStart,
		WindowEnd:                  windowEnd,
		Payload:                    payload,
		WarehouseID:                warehouseID,
		DriverID:                   driverID,
		FulfillmentEstimateSeconds: int64(aggregate.FulfillmentEstimate().Seconds()),
		RequiresExpeditedHandling:  aggregate.RequiresExpeditedHandling(),
		RequiresManualHandling:     aggregate.RequiresManualHandling(),
		CreatedAt:                  aggregate.CreatedAt(),
		UpdatedAt:                  aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database row back to an order aggregate using
// RestoreOrder, including the optional warehouse and driver assignments.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var warehouseID, driverID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if wErr != nil {
			return nil, wErr
		}
		warehouseID = &wID
	}
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}

	items, err := unmarshalItems(dto.Items)
	if err != nil {
		return nil, err
	}

	payload, err := unmarshalPayload(dto.Payload)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Delivery.Lat, dto.Delivery.Lon)
	if err != nil {
		return nil, err
	}

	window, err := windowFromColumns(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.OrderType(dto.OrderType),
		order.OrderSource(dto.Source),
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		items,
		dto.DeliveryAddress,
		location,
		window,
		payload,
		warehouseID,
		driverID,
		time.Duration(dto.FulfillmentEstimateSeconds)*time.Second,
		dto.RequiresExpeditedHandling,
		dto.RequiresManualHandling,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
